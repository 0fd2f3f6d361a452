package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("list conversations: %w", StorageUnavailable("database unavailable", cause))

	assert.True(t, Is(err, CodeStorageUnavailable))
	assert.False(t, Is(err, CodeNotFound))
	assert.ErrorIs(t, err, cause)
	assert.False(t, Is(cause, CodeStorageUnavailable))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("User", nil)

	assert.Equal(t, "User not found", err.Message)
	assert.Equal(t, "NOT_FOUND: User not found", err.Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "rating must be between 1 and 5", Message(Validation("rating must be between 1 and 5", nil)))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
