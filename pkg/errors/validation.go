package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is wrapped by every error caused by a malformed or
	// unsupported input: blank paths, unknown encodings, unknown algorithms.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is wrapped by errors caused by a source file that does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError represents an error that occurs due to invalid input.
// It includes the field name, the invalid value, and the underlying error message.
type ValidationError struct {
	Value any    `json:"value"` // The actual value that failed validation.
	Field string `json:"field"` // Name of the field that caused the validation error.
	Err   error  `json:"error"` // The underlying error providing details about the validation issue.
}

// NewValidationError creates a new ValidationError instance.
func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

// InvalidArgument creates a ValidationError wrapping ErrInvalidArgument.
func InvalidArgument(field string, value any, format string, args ...any) *ValidationError {
	return NewValidationError(field, value, fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)))
}

// NotFound creates a ValidationError wrapping ErrNotFound.
func NotFound(field string, value any, format string, args ...any) *ValidationError {
	return NewValidationError(field, value, fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...)))
}

// Error implements the error interface for ValidationError.
// It returns the error message associated with the validation failure.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if a given error is of type ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidationError attempts to extract a ValidationError from a given error.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsInvalidArgument reports whether err was caused by a malformed input.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsNotFound reports whether err was caused by a missing source file.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
