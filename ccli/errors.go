package ccli

import (
	"errors"
	"fmt"
)

// ccli package errors.
var (
	// ErrUnknownCommand indicates a program/command pair outside the vocabulary.
	ErrUnknownCommand = errors.New("ccli: unknown command")

	// ErrUnknownMode indicates an output mode other than normal/html/value/json.
	ErrUnknownMode = errors.New("ccli: unknown output mode")

	// ErrDecode indicates the CLI succeeded but its output could not be decoded.
	ErrDecode = errors.New("ccli: undecodable output")

	// ErrInvalidConfig indicates invalid invoker configuration.
	ErrInvalidConfig = errors.New("ccli: invalid configuration")
)

// InvocationError adds the invocation context to an error.
type InvocationError struct {
	Program Program
	Command Command
	Mode    Mode
	Err     error
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s %s (-m %s): %v", e.Program, e.Command, e.Mode, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
