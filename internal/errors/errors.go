// Package errors provides the error taxonomy and exit codes for kivagen.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an answer failed its validator.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the template root or a discovered path is missing.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates a read or write failure on a specific file.
	ErrIO = errors.New("io error")

	// ErrConflict indicates a destination file exists with different content.
	ErrConflict = errors.New("conflict")

	// ErrExternalProcess indicates the version-control init command failed.
	ErrExternalProcess = errors.New("external process error")

	// ErrAborted indicates the user cancelled the interactive session.
	ErrAborted = errors.New("aborted")
)

// Exit codes.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitValidationError = 2
	ExitNotFound        = 5
	ExitConflict        = 7
	ExitAborted         = 130
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the path the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error for a named answer.
func NewValidationError(field, message, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error for a path.
func NewNotFoundError(path string, cause error) error {
	return &DetailError{
		Type:     "not found",
		Message:  fmt.Sprintf("path does not exist: %s", path),
		Location: path,
		Cause:    errors.Join(ErrNotFound, cause),
	}
}

// NewIOError creates an IO error for an operation on a path.
func NewIOError(op, path string, cause error) error {
	return &DetailError{
		Type:     "io failed",
		Message:  fmt.Sprintf("%s %s: %v", op, path, cause),
		Location: path,
		Cause:    errors.Join(ErrIO, cause),
	}
}

// NewConflictError creates a conflict error for an existing destination file.
func NewConflictError(path string) error {
	return &DetailError{
		Type:     "conflict",
		Message:  fmt.Sprintf("file already exists with different content: %s", path),
		Location: path,
		Hint:     "Re-run with --force to overwrite existing files.",
		Cause:    ErrConflict,
	}
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error onto the exit code of its category.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrAborted):
		return ExitAborted
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrConflict):
		return ExitConflict
	default:
		return ExitGeneralError
	}
}

// Wrap converts err into an ExitError carrying the code of its category.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}
