package maven

import (
	"errors"
	"fmt"
	"path"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/workspace"
)

// ProjectLookup resolves registered projects by name.
type ProjectLookup interface {
	ReadProject(name string) (workspace.ProjectConfiguration, error)
}

// ParentValues are the coordinates a child pom uses to reference its parent.
type ParentValues struct {
	// RelativePath leads from the child project root to the parent pom.xml.
	RelativePath string
	Name         string
	GroupID      string
	Version      string
}

// ResolveParent locates the parent pom of a project rooted at projectRoot. An
// empty parentProject selects the pom at rootDir.
func ResolveParent(r Reader, projects ProjectLookup, rootDir, projectRoot, parentProject string) (ParentValues, error) {
	parentRoot := rootDir
	if parentProject != "" {
		cfg, err := projects.ReadProject(parentProject)
		if err != nil {
			if errors.Is(err, oerrors.ErrNotFound) {
				return ParentValues{}, oerrors.NewParentNotFoundError(
					fmt.Sprintf("parent project %q is not registered in the workspace", parentProject), "",
					"Pass the name of an existing Maven project with --parent-project.")
			}
			return ParentValues{}, err
		}
		parentRoot = cfg.Root
	}

	pomPath := PomPath(parentRoot)
	data, err := r.Read(pomPath)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return ParentValues{}, oerrors.NewParentNotFoundError(
				"parent pom.xml does not exist", pomPath,
				"Create the parent project first or pass --parent-project.")
		}
		return ParentValues{}, err
	}

	coords, err := ReadCoordinates(data, pomPath)
	if err != nil {
		return ParentValues{}, err
	}

	values := ParentValues{
		RelativePath: path.Join(naming.RelativePath(projectRoot, parentRoot), PomFile),
		Name:         coords.ArtifactID,
		GroupID:      coords.GroupID,
		Version:      coords.Version,
	}
	output.Debug("resolved parent project", "pom", pomPath, "artifactId", values.Name, "relativePath", values.RelativePath)
	return values, nil
}
