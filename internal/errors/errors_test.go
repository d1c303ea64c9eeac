//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrIO, ErrConflict)
	assert.NotEqual(t, ErrExternalProcess, ErrAborted)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid version",
		Location: "version",
		Hint:     "Use semver format",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: version")
	assert.Contains(t, output, "invalid version")
	assert.Contains(t, output, "Hint: Use semver format")
}

func TestNotFoundErrorKeepsCause(t *testing.T) {
	err := NewNotFoundError("/tmp/missing", fs.ErrNotExist)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "/tmp/missing")
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("version", "bad", ""), ExitValidationError},
		{"not found", NewNotFoundError("x", nil), ExitNotFound},
		{"conflict", NewConflictError("a.txt"), ExitConflict},
		{"aborted", ErrAborted, ExitAborted},
		{"io", NewIOError("write", "a.txt", errors.New("disk full")), ExitGeneralError},
		{"plain", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	err := Wrap(NewConflictError("a.txt"))
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitConflict, exitErr.Code)

	// Already wrapped errors pass through untouched.
	same := &ExitError{Code: 42, Err: errors.New("custom")}
	assert.Same(t, same, Wrap(same))
}
