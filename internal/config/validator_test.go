package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(DefaultConfig()))
	})

	t.Run("unknown plugin", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Plugin = "@nx/js"

		err := v.Validate(cfg)
		require.Error(t, err)

		var errs ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Equal(t, "plugin", errs[0].Field)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("bad group id", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Defaults.GroupID = "com..example"

		err := v.Validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defaults.groupId")
	})

	t.Run("indent out of range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Format.XMLIndent = 12

		assert.Error(t, v.Validate(cfg))
	})
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"valid", "defaults:\n  groupId: com.example\nformat:\n  xmlIndent: 4\n", ""},
		{"empty", "", ""},
		{"unknown key", "registry: example.com\n", "registry"},
		{"wrong type", "skipFormat: maybe\n", "skipFormat"},
		{"invalid yaml", "defaults: [unclosed\n", "(file)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateFile(writeConfig(t, tt.content))
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs), "got %v", err)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}
