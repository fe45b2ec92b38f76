// Package cmdutil provides shared command utilities for generate subcommands.
// It centralizes flag group management, workspace resolution, error reporting
// and change output.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/generator"
)

// ProjectFlags holds the naming and coordinate flags every generator accepts.
type ProjectFlags struct {
	Directory         string
	SimpleName        bool
	Tags              string
	ProjectType       string
	GroupID           string
	ProjectVersion    string
	ParentProject     string
	AggregatorProject string
	Language          string
	Framework         string
}

// AddTo registers the project flags on the given cobra command.
func (f *ProjectFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Directory, "directory", "d", "",
		"Directory below the build root where the project is placed")
	cmd.Flags().BoolVar(&f.SimpleName, "simple-name", false,
		"Do not prefix the project name with the directory")
	cmd.Flags().StringVar(&f.Tags, "tags", "",
		"Comma-separated project tags")
	cmd.Flags().StringVar(&f.ProjectType, "project-type", "",
		"Nx project type: application or library")
	cmd.Flags().StringVar(&f.GroupID, "group-id", "",
		"Maven groupId (default: defaults.groupId from config)")
	cmd.Flags().StringVar(&f.ProjectVersion, "project-version", "",
		"Project version (default: defaults.projectVersion from config)")
	cmd.Flags().StringVar(&f.ParentProject, "parent-project", "",
		"Maven parent project to inherit from (default: root pom)")
	cmd.Flags().StringVar(&f.AggregatorProject, "aggregator-project", "",
		"Project whose build file lists the new module (default: build root)")
	cmd.Flags().StringVar(&f.Language, "language", "",
		"Source language: java or kotlin")
	cmd.Flags().StringVar(&f.Framework, "framework", "",
		"Framework: spring-boot, quarkus, micronaut or none")
}

// Options converts the flags to generator options for name.
func (f *ProjectFlags) Options(name string) generator.Options {
	return generator.Options{
		Name:              name,
		Directory:         f.Directory,
		SimpleName:        f.SimpleName,
		Tags:              f.Tags,
		ProjectType:       f.ProjectType,
		GroupID:           f.GroupID,
		ProjectVersion:    f.ProjectVersion,
		ParentProject:     f.ParentProject,
		AggregatorProject: f.AggregatorProject,
		Language:          f.Language,
		Framework:         f.Framework,
	}
}

// RunFlags holds flags that control how a generator run is executed.
type RunFlags struct {
	Plugin       string
	VersionsFile string
	SkipFormat   bool
	DryRun       bool
}

// AddTo registers the run flags on the given cobra command.
func (f *RunFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Plugin, "plugin", "",
		"Build plugin to use instead of the one in nx.json")
	cmd.Flags().StringVar(&f.VersionsFile, "versions-file", "",
		"TOML file overriding framework and plugin versions")
	cmd.Flags().BoolVar(&f.SkipFormat, "skip-format", false,
		"Skip formatting the generated files")
	cmd.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Show the changes without writing them")
}
