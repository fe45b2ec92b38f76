//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrValidation,
		ErrNotFound,
		ErrWorkspaceNotFound,
		ErrParentNotFound,
		ErrMalformedBuildFile,
		ErrUnsupportedPlugin,
		ErrAggregatorNotFound,
		ErrProjectExists,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "invalid value",
		Location: "nx-maven/pom.xml",
		Field:    "groupId",
		Context:  map[string]string{"Plugin": "@jnxplus/nx-maven", "Aggregator": "root"},
		Hint:     "Use reverse-DNS notation",
	}

	out := detail.Error()

	assert.Contains(t, out, "Error: validation failed")
	assert.Contains(t, out, "Location: nx-maven/pom.xml")
	assert.Contains(t, out, "Field: groupId")
	assert.Contains(t, out, "Plugin: @jnxplus/nx-maven")
	assert.Contains(t, out, "invalid value")
	assert.Contains(t, out, "Hint: Use reverse-DNS notation")
	assert.Less(t, strings.Index(out, "Aggregator:"), strings.Index(out, "Plugin:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestConstructorsCarrySentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", NewValidationError("m", "", "name", ""), ErrValidation},
		{"not found", NewNotFoundError("m", "a/b", ""), ErrNotFound},
		{"parent", NewParentNotFoundError("m", "", ""), ErrParentNotFound},
		{"malformed", NewMalformedBuildFileError("m", "pom.xml", "artifactId"), ErrMalformedBuildFile},
		{"plugin", NewUnsupportedPluginError("m", nil, ""), ErrUnsupportedPlugin},
		{"aggregator", NewAggregatorNotFoundError("m", "", ""), ErrAggregatorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, errors.Is(tt.err, tt.sentinel))

			var detail *DetailError
			require.True(t, errors.As(tt.err, &detail))
			assert.Equal(t, "m", detail.Message)
		})
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "reading nx.json")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "reading nx.json: not found", err.Error())
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation", ErrValidation, ExitValidationError},
		{"wrapped validation", fmt.Errorf("normalizing: %w", ErrValidation), ExitValidationError},
		{"workspace not found", ErrWorkspaceNotFound, ExitNotFound},
		{"parent not found", NewParentNotFoundError("x", "", ""), ExitNotFound},
		{"aggregator not found", ErrAggregatorNotFound, ExitNotFound},
		{"unsupported plugin", ErrUnsupportedPlugin, ExitUnsupportedPlugin},
		{"project exists", ErrProjectExists, ExitProjectExists},
		{"malformed build file", ErrMalformedBuildFile, ExitMalformedBuild},
		{"unknown", errors.New("boom"), ExitGeneralError},
		{"explicit exit error", &ExitError{Err: ErrValidation, Code: 42}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	err := &ExitError{Err: ErrProjectExists, Code: ExitProjectExists}
	assert.True(t, errors.Is(err, ErrProjectExists))
	assert.Equal(t, ErrProjectExists.Error(), err.Error())
	assert.Equal(t, "exit code 3", (&ExitError{Code: 3}).Error())
}
