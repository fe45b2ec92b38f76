package versions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "versions.toml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDefaultHasNoEmptyEntries(t *testing.T) {
	for _, e := range Default().Entries() {
		assert.NotEmpty(t, e.Version, e.Key)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	p := writeTOML(t, `
springBoot = "3.3.0"
kotlin = "2.0.0"
`)

	table, err := LoadFile(p)
	require.NoError(t, err)

	assert.Equal(t, "3.3.0", table.SpringBoot)
	assert.Equal(t, "2.0.0", table.Kotlin)
	assert.Equal(t, Default().Quarkus, table.Quarkus)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{"misspelled", `springbot = "3.3.0"`, "springbot"},
		{"wrong case", `springboot = "3.3.0"`, "springboot"},
		{"nested table", "[maven]\ncompiler = \"3.12.1\"", "maven"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeTOML(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoadFileRejectsEmptyVersions(t *testing.T) {
	p := writeTOML(t, `quarkus = ""`)

	_, err := LoadFile(p)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	table, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Default(), table)
}
