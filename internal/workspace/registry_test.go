package workspace

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

func TestRegistryReadProject(t *testing.T) {
	root := t.TempDir()
	writeDisk(t, root, "nx-maven/libs/parent/project.json", `{"name": "parent", "projectType": "library"}`)
	writeDisk(t, root, "nx-maven/libs/unnamed/project.json", `{}`)

	reg := NewRegistry(NewTree(root))

	cfg, err := reg.ReadProject("parent")
	require.NoError(t, err)
	assert.Equal(t, "nx-maven/libs/parent", cfg.Root)
	assert.Equal(t, "library", cfg.ProjectType)

	cfg, err = reg.ReadProject("unnamed")
	require.NoError(t, err, "name falls back to the directory")
	assert.Equal(t, "nx-maven/libs/unnamed", cfg.Root)

	_, err = reg.ReadProject("missing")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestRegistryAddProject(t *testing.T) {
	tree := NewTree(t.TempDir())
	reg := NewRegistry(tree)

	err := reg.AddProject("apps-my-app", ProjectConfiguration{
		Root:        "nx-maven/apps/my-app",
		ProjectType: "application",
		Targets: map[string]TargetConfiguration{
			"build": {
				Executor: "@jnxplus/nx-maven:run-task",
				Outputs:  []string{"{options.outputDirLocalRepo}"},
				Options:  map[string]any{"task": "install"},
			},
		},
	})
	require.NoError(t, err)

	data, err := tree.Read("nx-maven/apps/my-app/project.json")
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "apps-my-app", raw["name"])
	assert.Equal(t, "../../../node_modules/nx/schemas/project-schema.json", raw["$schema"])
	assert.Equal(t, []any{}, raw["tags"])
	assert.NotContains(t, raw, "root")

	cfg, err := reg.ReadProject("apps-my-app")
	require.NoError(t, err, "staged projects are visible")
	assert.Equal(t, "install", cfg.Targets["build"].Options["task"])
}

func TestRegistryAddProjectRejectsDuplicates(t *testing.T) {
	root := t.TempDir()
	writeDisk(t, root, "apps/existing/project.json", `{"name": "existing"}`)
	reg := NewRegistry(NewTree(root))

	err := reg.AddProject("existing", ProjectConfiguration{Root: "apps/other"})
	assert.True(t, errors.Is(err, oerrors.ErrProjectExists))

	err = reg.AddProject("renamed", ProjectConfiguration{Root: "apps/existing"})
	assert.True(t, errors.Is(err, oerrors.ErrProjectExists))

	err = reg.AddProject("rootless", ProjectConfiguration{})
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
