package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Generation and transfer errors.
var (
	// ErrMissingAPIKey is the soft condition of an unconfigured provider.
	// Callers substitute placeholder content without surfacing an error.
	ErrMissingAPIKey = errors.New("missing api key")

	ErrDuplicateTransfer  = errors.New("flower has already been transferred")
	ErrUnsupportedVersion = errors.New("unsupported document version")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrInvalidDocument    = errors.New("invalid document")

	// ErrClosed is returned by the garden after shutdown.
	ErrClosed = errors.New("garden closed")
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
