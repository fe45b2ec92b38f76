package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/testutil"
	"github.com/jvmgen/cli/internal/versions"
)

func TestVersionsCmd_YAML(t *testing.T) {
	out, err := execute(t, "versions")
	require.NoError(t, err)

	var table versions.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &table))
	assert.Equal(t, versions.Default(), table)
}

func TestVersionsCmd_JSONWithOverrides(t *testing.T) {
	file := testutil.WriteFile(t, t.TempDir(), "versions.toml", "springBoot = \"3.3.0\"\n")

	out, err := execute(t, "versions", "-o", "json", "--versions-file", file)
	require.NoError(t, err)

	var table map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, "3.3.0", table["springBoot"])
	assert.Equal(t, versions.Default().Quarkus, table["quarkus"])
}

func TestVersionsCmd_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "versions", "-o", "table")
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})

	t.Run("unknown key in versions file", func(t *testing.T) {
		file := testutil.WriteFile(t, t.TempDir(), "versions.toml", "springboot = \"3.3.0\"\n")

		_, err := execute(t, "versions", "--versions-file", file)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	})
}
