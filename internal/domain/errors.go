package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound: the requested entry, session, or employee does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: a uniqueness constraint was violated (email, employee id).
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation: malformed or contradictory input.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized: bad credentials, invalid token, or deactivated account.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden: the caller lacks the rights for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict: the operation clashes with current state, e.g. starting a
	// work session while one is already running.
	ErrConflict = errors.New("conflict")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
