package utils

import (
	"errors"
	"fmt"
)

// ValidationError represents invalid configuration or input data.
// Field names the offending setting, in dotted config notation, when known.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message string.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// NewValidationError creates a new ValidationError with a specific message.
func NewValidationError(message string) error {
	return &ValidationError{
		Message: message,
	}
}

// NewValidationErrorf creates a new ValidationError with a formatted message.
func NewValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NewFieldError creates a ValidationError bound to a config field, e.g.
// NewFieldError("penalty.banned", "must not be negative").
func NewFieldError(field string, format string, args ...interface{}) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidationField returns the field of a wrapped ValidationError, or ""
func ValidationField(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Field
	}
	return ""
}
