package logger

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Info("listing %s created", "l-1")
	LogStorageError("conversation", "c-9", "append message", errors.New("timeout"))

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "listing l-1 created")
	assert.Contains(t, out, "action=append message, conversation=c-9, error=timeout")
}

func TestDebugOnlyInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	t.Setenv("ENVIRONMENT", "production")
	Debug("hidden")
	assert.Empty(t, buf.String())

	t.Setenv("ENVIRONMENT", "development")
	Debug("shown")
	assert.Contains(t, buf.String(), "DEBUG: ")
}
