package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "day_pillar",
		Message: "test error message",
	}

	assert.Equal(t, "day_pillar: test error message", err.Error())
}

func TestValidationError_ErrorWithoutField(t *testing.T) {
	err := &ValidationError{
		Message: "test error message",
	}

	assert.Equal(t, "test error message", err.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("gender", "validation failed")

	assert.Error(t, err)
	assert.Equal(t, "gender: validation failed", err.Error())

	// Check that it's the correct type
	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "gender", validationErr.Field)
	assert.Equal(t, "validation failed", validationErr.Message)
}

func TestNewValidationErrorf(t *testing.T) {
	err := NewValidationErrorf("year_pillar", "unknown glyph %q at position %d", "X", 1)

	assert.Error(t, err)
	assert.Equal(t, `year_pillar: unknown glyph "X" at position 1`, err.Error())

	// Check that it's the correct type
	validationErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "year_pillar", validationErr.Field)
	assert.Equal(t, `unknown glyph "X" at position 1`, validationErr.Message)
}

func TestValidationError_Unwrap(t *testing.T) {
	wrapped := fmt.Errorf("failed to build chart: %w", NewValidationError("hour_pillar", "bad value"))

	var validationErr *ValidationError
	assert.True(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, "hour_pillar", validationErr.Field)
}
