package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Message: "test error message",
	}

	assert.Equal(t, "test error message", err.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("validation failed")

	assert.Error(t, err)
	assert.Equal(t, "validation failed", err.Error())

	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Empty(t, validationErr.Field)
}

func TestNewValidationErrorf(t *testing.T) {
	err := NewValidationErrorf("market %q: unknown legality_status %q", "ca-irvine", "prohibited")

	assert.Equal(t, `market "ca-irvine": unknown legality_status "prohibited"`, err.Error())
	assert.True(t, IsValidationError(err))
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("penalty.banned", "must not exceed %d", 100)

	assert.Equal(t, "penalty.banned must not exceed 100", err.Error())
	assert.Equal(t, "penalty.banned", ValidationField(err))
}

func TestValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("load config: %w", NewFieldError("cache.ttl", "must be positive"))

	assert.True(t, IsValidationError(err))
	assert.Equal(t, "cache.ttl", ValidationField(err))

	plain := fmt.Errorf("read file: %w", assert.AnError)
	assert.False(t, IsValidationError(plain))
	assert.Equal(t, "", ValidationField(plain))
}
