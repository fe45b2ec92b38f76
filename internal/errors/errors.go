// Package errors provides sentinel errors and user-facing error details for jvmgen.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the workspace path the error refers to (optional).
	Location string

	// Field is the option name for validation errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

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
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
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

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewParentNotFoundError reports a parent project that cannot be located.
func NewParentNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "parent project not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrParentNotFound,
	}
}

// NewMalformedBuildFileError reports a build file with missing or unparsable fields.
func NewMalformedBuildFileError(message, location, field string) error {
	return &DetailError{
		Type:     "malformed build file",
		Message:  message,
		Location: location,
		Field:    field,
		Cause:    ErrMalformedBuildFile,
	}
}

// NewUnsupportedPluginError reports an unknown or ambiguous build plugin.
func NewUnsupportedPluginError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "unsupported plugin",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrUnsupportedPlugin,
	}
}

// NewAggregatorNotFoundError reports an aggregator project that cannot be located.
func NewAggregatorNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "aggregator project not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrAggregatorNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Exit codes returned by the jvmgen binary.
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitValidationError   = 2
	ExitNotFound          = 3
	ExitUnsupportedPlugin = 4
	ExitProjectExists     = 5
	ExitMalformedBuild    = 6
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has written the error to stderr.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrWorkspaceNotFound),
		errors.Is(err, ErrParentNotFound),
		errors.Is(err, ErrAggregatorNotFound),
		errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrUnsupportedPlugin):
		return ExitUnsupportedPlugin
	case errors.Is(err, ErrProjectExists):
		return ExitProjectExists
	case errors.Is(err, ErrMalformedBuildFile):
		return ExitMalformedBuild
	default:
		return ExitGeneralError
	}
}
