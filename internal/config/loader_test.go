package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))
	return configFile
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := writeConfig(t, `
workspace: /work/shop
plugin: "@jnxplus/nx-gradle"
versionsFile: /work/versions.toml
skipFormat: true
defaults:
  groupId: com.example
  projectVersion: 1.2.3
format:
  xmlIndent: 4
log:
  timestamps: false
`)

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.True(t, loader.Found())
		assert.Equal(t, "/work/shop", cfg.Workspace)
		assert.Equal(t, "@jnxplus/nx-gradle", cfg.Plugin)
		assert.Equal(t, "/work/versions.toml", cfg.VersionsFile)
		assert.True(t, cfg.SkipFormat)
		assert.Equal(t, "com.example", cfg.Defaults.GroupID)
		assert.Equal(t, "1.2.3", cfg.Defaults.ProjectVersion)
		assert.Equal(t, 4, cfg.Format.XMLIndent)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		loader := NewLoader()
		cfg, err := loader.Load(configFile)

		require.NoError(t, err)
		assert.False(t, loader.Found())
		assert.Empty(t, cfg.Workspace)
		assert.Equal(t, "0.0.1-SNAPSHOT", cfg.Defaults.ProjectVersion)
		assert.Equal(t, 2, cfg.Format.XMLIndent)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv("JVMGEN_DEFAULTS_GROUPID", "org.env")
		t.Setenv("JVMGEN_FORMAT_XMLINDENT", "3")

		configFile := writeConfig(t, "defaults:\n  groupId: org.file\n")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "org.env", cfg.Defaults.GroupID)
		assert.Equal(t, 3, cfg.Format.XMLIndent)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configFile := writeConfig(t, "defaults: [unclosed\n")

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestConfigFileExists(t *testing.T) {
	configFile := writeConfig(t, "")

	exists, err := ConfigFileExists(configFile)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}
