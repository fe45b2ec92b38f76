package maven

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/workspace"
)

const rootPom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>root</artifactId>
  <version>1.0.0</version>
  <packaging>pom</packaging>
  <modules>
    <module>libs/a</module>
  </modules>
</project>
`

func writeFiles(t *testing.T, files map[string]string) *workspace.Tree {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return workspace.NewTree(dir)
}

func TestResolveParentDefaultsToRootPom(t *testing.T) {
	tree := writeFiles(t, map[string]string{"nx-maven/pom.xml": rootPom})

	values, err := ResolveParent(tree, workspace.NewRegistry(tree), "nx-maven", "nx-maven/apps/my-app", "")
	require.NoError(t, err)

	assert.Equal(t, ParentValues{
		RelativePath: "../../pom.xml",
		Name:         "root",
		GroupID:      "com.example",
		Version:      "1.0.0",
	}, values)
}

func TestResolveParentExplicitProject(t *testing.T) {
	tree := writeFiles(t, map[string]string{
		"pom.xml":                  rootPom,
		"libs/parent/pom.xml":      `<project><parent><groupId>org.acme</groupId><version>2.0</version></parent><artifactId>libs-parent</artifactId></project>`,
		"libs/parent/project.json": `{"name": "libs-parent"}`,
	})

	values, err := ResolveParent(tree, workspace.NewRegistry(tree), "", "libs/child", "libs-parent")
	require.NoError(t, err)

	assert.Equal(t, "../parent/pom.xml", values.RelativePath)
	assert.Equal(t, "libs-parent", values.Name)
	assert.Equal(t, "org.acme", values.GroupID, "groupId is inherited from <parent>")
	assert.Equal(t, "2.0", values.Version)
}

func TestResolveParentErrors(t *testing.T) {
	tests := []struct {
		name   string
		files  map[string]string
		parent string
		want   error
	}{
		{"unknown parent project", map[string]string{"pom.xml": rootPom}, "missing", oerrors.ErrParentNotFound},
		{"missing root pom", map[string]string{}, "", oerrors.ErrParentNotFound},
		{"invalid xml", map[string]string{"pom.xml": "<project><artifactId>"}, "", oerrors.ErrMalformedBuildFile},
		{"wrong root element", map[string]string{"pom.xml": "<settings/>"}, "", oerrors.ErrMalformedBuildFile},
		{"no artifactId", map[string]string{"pom.xml": "<project><groupId>g</groupId><version>1</version></project>"}, "", oerrors.ErrMalformedBuildFile},
		{"no version", map[string]string{"pom.xml": "<project><groupId>g</groupId><artifactId>a</artifactId></project>"}, "", oerrors.ErrMalformedBuildFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := writeFiles(t, tt.files)
			_, err := ResolveParent(tree, workspace.NewRegistry(tree), "", "apps/x", tt.parent)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Empty(t, tree.Changes())
		})
	}
}

func TestUnparsablePomIsMalformedBuildFile(t *testing.T) {
	_, err := ReadCoordinates([]byte("<project><artifactId>"), "libs/a/pom.xml")

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "malformed build file", detail.Type)
	assert.Equal(t, "libs/a/pom.xml", detail.Location)
	assert.Contains(t, detail.Message, "cannot parse XML")
	assert.Equal(t, oerrors.ExitMalformedBuild, oerrors.ExitCodeFromError(err))

	tree := writeFiles(t, map[string]string{"nx-maven/pom.xml": "<project><modules>"})
	_, err = AddModule(tree, "nx-maven", "nx-maven/apps/my-app")
	assert.True(t, errors.Is(err, oerrors.ErrMalformedBuildFile), "got %v", err)
	assert.Empty(t, tree.Changes())
}

func TestAddModuleAppendsWithExistingIndentation(t *testing.T) {
	tree := writeFiles(t, map[string]string{"nx-maven/pom.xml": rootPom})

	changed, err := AddModule(tree, "nx-maven", "nx-maven/apps/my-app")
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := tree.Read("nx-maven/pom.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data),
		"  <modules>\n    <module>libs/a</module>\n    <module>apps/my-app</module>\n  </modules>\n</project>")
	assert.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`))
}

func TestAddModuleIsIdempotent(t *testing.T) {
	tree := writeFiles(t, map[string]string{"pom.xml": rootPom})

	changed, err := AddModule(tree, "", "apps/my-app")
	require.NoError(t, err)
	assert.True(t, changed)
	first, err := tree.Read("pom.xml")
	require.NoError(t, err)

	changed, err = AddModule(tree, "", "apps/my-app/")
	require.NoError(t, err)
	assert.False(t, changed)

	second, err := tree.Read("pom.xml")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(string(second), "<module>apps/my-app</module>"))
}

func TestAddModuleCreatesModules(t *testing.T) {
	pom := "<project>\n\t<artifactId>root</artifactId>\n\t<packaging>pom</packaging>\n</project>\n"
	tree := writeFiles(t, map[string]string{"pom.xml": pom})

	_, err := AddModule(tree, "", "apps/my-app")
	require.NoError(t, err)

	data, err := tree.Read("pom.xml")
	require.NoError(t, err)
	assert.Equal(t,
		"<project>\n\t<artifactId>root</artifactId>\n\t<packaging>pom</packaging>\n\t<modules>\n\t\t<module>apps/my-app</module>\n\t</modules>\n</project>\n",
		string(data))
}

func TestAddModuleFillsEmptyModules(t *testing.T) {
	pom := "<project>\n  <artifactId>root</artifactId>\n  <modules/>\n</project>\n"
	tree := writeFiles(t, map[string]string{"pom.xml": pom})

	_, err := AddModule(tree, "", "libs/b")
	require.NoError(t, err)

	data, err := tree.Read("pom.xml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "  <modules>\n    <module>libs/b</module>\n  </modules>\n")
}

func TestAddModuleErrors(t *testing.T) {
	tree := writeFiles(t, map[string]string{"pom.xml": rootPom})

	_, err := AddModule(tree, "nx-maven", "nx-maven/apps/x")
	assert.True(t, errors.Is(err, oerrors.ErrAggregatorNotFound))

	_, err = AddModule(tree, "", "")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	assert.Empty(t, tree.Changes())
}
