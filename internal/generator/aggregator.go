package generator

import (
	"errors"
	"fmt"
	"path"
	"strings"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/gradle"
	"github.com/jvmgen/cli/internal/maven"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/plugin"
)

// AggregatorRoot returns the root of the project new modules are registered
// in: the named aggregator project, or rootDir when none is named.
func AggregatorRoot(projects ProjectRegistry, aggregatorProject, rootDir string) (string, error) {
	if aggregatorProject == "" {
		return rootDir, nil
	}

	cfg, err := projects.ReadProject(aggregatorProject)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return "", oerrors.NewAggregatorNotFoundError(
				fmt.Sprintf("aggregator project %q is not registered in the workspace", aggregatorProject), "",
				"Pass the name of an existing project with --aggregator-project.")
		}
		return "", err
	}
	return cfg.Root, nil
}

// checkAggregator verifies before any write that ref can be registered with
// the build tool's aggregator file.
func checkAggregator(tree TreeAccess, ref AggregatorReference, tool plugin.BuildTool) error {
	rel := naming.RelativePath(ref.AggregatorProjectRoot, ref.ProjectRoot)
	if rel == "." {
		return oerrors.NewValidationError(
			"project root is the aggregator root", ref.ProjectRoot, "aggregatorProject",
			"Generate the project in a directory below the aggregator.")
	}

	root := strings.Trim(ref.AggregatorProjectRoot, "/")
	switch tool {
	case plugin.Gradle:
		if strings.HasPrefix(rel, "../") {
			return oerrors.NewValidationError(
				fmt.Sprintf("project %s is not below the Gradle root %s", ref.ProjectRoot, root),
				ref.ProjectRoot, "aggregatorProject", "")
		}
		for _, name := range []string{gradle.KotlinSettingsFile, gradle.GroovySettingsFile} {
			if tree.Exists(path.Join(root, name)) {
				return nil
			}
		}
		return oerrors.NewAggregatorNotFoundError(
			fmt.Sprintf("no %s or %s found", gradle.KotlinSettingsFile, gradle.GroovySettingsFile),
			path.Join(root, gradle.KotlinSettingsFile),
			"Create the Gradle root project first or pass --aggregator-project.")
	default:
		if tree.Exists(maven.PomPath(root)) {
			return nil
		}
		return oerrors.NewAggregatorNotFoundError(
			"aggregator pom.xml does not exist", maven.PomPath(root),
			"Create the aggregator project first or pass --aggregator-project.")
	}
}

// RegisterWithAggregator adds the project of ref to its aggregator's module
// list. It reports whether the aggregator file changed.
func RegisterWithAggregator(tree TreeAccess, ref AggregatorReference, tool plugin.BuildTool) (bool, error) {
	if tool == plugin.Gradle {
		return gradle.AddInclude(tree, ref.AggregatorProjectRoot, ref.ProjectRoot)
	}
	return maven.AddModule(tree, ref.AggregatorProjectRoot, ref.ProjectRoot)
}
