package service

import "errors"

// Service package errors.
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("service: not found")

	// ErrUnavailable indicates the CLI could not be started.
	ErrUnavailable = errors.New("service: cli unavailable")
)
