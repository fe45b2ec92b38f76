package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

// memReader serves files from a map.
type memReader map[string]string

func (m memReader) Read(path string) ([]byte, error) {
	if s, ok := m[path]; ok {
		return []byte(s), nil
	}
	return nil, oerrors.Wrap(oerrors.ErrNotFound, path)
}

func TestSelectMaven(t *testing.T) {
	r := memReader{"nx.json": `{"plugins": [
		"@nx/js",
		{"plugin": "@jnxplus/nx-maven", "options": {"mavenRootDirectory": "nx-maven/"}}
	]}`}

	sel, err := Select(r, "")
	require.NoError(t, err)

	assert.Equal(t, Maven, sel.Tool)
	assert.Equal(t, "nx-maven", sel.RootDirectory)
	assert.Equal(t, "build", sel.BuildTargetName)
	assert.Equal(t, "pom.xml", sel.BuildFileName)

	target := sel.Target()
	assert.Equal(t, "@jnxplus/nx-maven:run-task", target.Executor)
	assert.Equal(t, []string{"{options.outputDirLocalRepo}"}, target.Outputs)
	assert.Equal(t, "install", target.Options["task"])
}

func TestSelectGradleWithTargetName(t *testing.T) {
	r := memReader{"nx.json": `{"plugins": [{"plugin": "@jnxplus/nx-gradle", "options": {"buildTargetName": "assemble"}}]}`}

	sel, err := Select(r, "")
	require.NoError(t, err)

	assert.Equal(t, Gradle, sel.Tool)
	assert.Equal(t, "", sel.RootDirectory)
	assert.Equal(t, "assemble", sel.BuildTargetName)
	assert.Equal(t, "build", sel.Task)
}

func TestSelectFailures(t *testing.T) {
	tests := []struct {
		name     string
		nx       string
		override string
	}{
		{"no jvm plugin", `{"plugins": ["@nx/js"]}`, ""},
		{"no plugins", `{}`, ""},
		{"ambiguous", `{"plugins": ["@jnxplus/nx-maven", "@jnxplus/nx-gradle"]}`, ""},
		{"unknown override", `{"plugins": ["@jnxplus/nx-maven"]}`, "@jnxplus/nx-ant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Select(memReader{"nx.json": tt.nx}, tt.override)
			assert.True(t, errors.Is(err, oerrors.ErrUnsupportedPlugin), "got %v", err)
		})
	}
}

func TestSelectOverrideResolvesAmbiguity(t *testing.T) {
	r := memReader{"nx.json": `{"plugins": [
		{"plugin": "@jnxplus/nx-maven", "options": {"mavenRootDirectory": "maven"}},
		{"plugin": "@jnxplus/nx-gradle", "options": {"gradleRootDirectory": "gradle"}}
	]}`}

	sel, err := Select(r, GradlePlugin)
	require.NoError(t, err)
	assert.Equal(t, "gradle", sel.RootDirectory)

	sel, err = Select(memReader{"nx.json": `{}`}, MavenPlugin)
	require.NoError(t, err, "an override does not need an nx.json entry")
	assert.Equal(t, Maven, sel.Tool)
}

func TestSelectMissingNxJSON(t *testing.T) {
	_, err := Select(memReader{}, "")
	assert.True(t, errors.Is(err, oerrors.ErrWorkspaceNotFound))
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{GradlePlugin, MavenPlugin}, Supported())
}
