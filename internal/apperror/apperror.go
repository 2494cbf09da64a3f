// Package apperror defines the application's domain errors.
//
// Services return these instead of HTTP status codes; the handler layer maps
// them with errors.Is/errors.As. This keeps every layer below the handlers
// protocol-agnostic.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors. Check for them with errors.Is — AppError implements
// Unwrap(), so the check works through any fmt.Errorf("%w") wrapping.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
)

// AppError pairs a sentinel with a human-readable message, and optionally the
// field that caused a validation failure.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no record of the given kind exists with the given id.
// HTTP handlers map this to 404.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports a bad input value on a named field.
// HTTP handlers map this to 400.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Unavailable reports that an optional collaborator (the AI assistant) is not
// configured or failed. HTTP handlers map this to 503. It must never block or
// fail a snippet save — callers treat it as "feature off", not as a fault.
func Unavailable(feature string) *AppError {
	return &AppError{
		Err:     ErrUnavailable,
		Message: fmt.Sprintf("%s is unavailable", feature),
	}
}
