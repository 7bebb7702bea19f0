package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidation("name is required", "price cannot be negative")
	assert.Equal(t, "validation failed: name is required; price cannot be negative", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("product", 42)
	assert.Equal(t, "product with id 42 not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestReferentialIntegrityError(t *testing.T) {
	err := NewReferentialIntegrity("category", 5, "3 products reference it")
	assert.Equal(t, "cannot delete category 5: 3 products reference it", err.Error())
	assert.True(t, IsReferentialIntegrity(err))
	assert.False(t, IsNotFound(err))
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStorage("insert product", cause)
	assert.Contains(t, err.Error(), "insert product")
	assert.ErrorIs(t, err, cause)
}

func TestClassifiersSeeWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFound("supplier", 9))
	assert.True(t, IsNotFound(wrapped))

	assert.False(t, IsValidation(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}
