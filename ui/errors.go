package ui

import "errors"

// UI package errors.
var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("ui: invalid configuration")

	// ErrCLIRequired indicates no CLI was given to the handler.
	ErrCLIRequired = errors.New("ui: cli required")
)
