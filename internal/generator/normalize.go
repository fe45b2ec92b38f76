package generator

import (
	"fmt"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/maven"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/plugin"
	"github.com/jvmgen/cli/internal/schema"
	"github.com/jvmgen/cli/internal/templates"
)

// Kind selects the generator a set of options is normalized for.
type Kind string

const (
	KindParentProject Kind = "parent-project"
	KindApplication   Kind = "application"
)

func (k Kind) definition() string {
	if k == KindParentProject {
		return schema.ParentProject
	}
	return schema.Application
}

// Normalize validates opts and resolves every derived value. It reads the
// workspace but never writes to it.
func Normalize(host *Host, kind Kind, opts Options) (NormalizedOptions, error) {
	if err := host.Validator.Validate(kind.definition(), opts); err != nil {
		return NormalizedOptions{}, err
	}

	sel, err := plugin.Select(host.Tree, host.Plugin)
	if err != nil {
		return NormalizedOptions{}, err
	}
	if kind == KindParentProject && sel.Tool != plugin.Maven {
		return NormalizedOptions{}, oerrors.NewUnsupportedPluginError(
			fmt.Sprintf("%s projects require %s", kind, plugin.MavenPlugin),
			map[string]string{"Plugin": sel.Plugin}, "Gradle builds have no parent pom.")
	}

	n := NormalizedOptions{Options: opts, Plugin: sel, Versions: host.Versions}

	name, directory := naming.SplitName(opts.Name, opts.Directory)
	n.SimpleProjectName = naming.FileName(name)
	n.ProjectName = naming.ProjectName(n.SimpleProjectName, directory, opts.SimpleName)
	n.ProjectDirectory = naming.ProjectDirectory(n.SimpleProjectName, directory)
	n.ProjectRoot = naming.ProjectRoot(sel.RootDirectory, n.ProjectDirectory)
	n.OffsetFromRoot = naming.OffsetFromRoot(n.ProjectRoot)
	n.ParsedTags = naming.ParseTags(opts.Tags)

	switch {
	case sel.Tool == plugin.Maven:
		n.Parent, err = maven.ResolveParent(host.Tree, host.Projects, sel.RootDirectory, n.ProjectRoot, opts.ParentProject)
		if err != nil {
			return NormalizedOptions{}, err
		}
	case opts.ParentProject != "":
		return NormalizedOptions{}, oerrors.NewValidationError(
			"parent projects are only supported for Maven builds", "", "parentProject", "")
	}

	n.AggregatorProjectRoot, err = AggregatorRoot(host.Projects, opts.AggregatorProject, sel.RootDirectory)
	if err != nil {
		return NormalizedOptions{}, err
	}
	if err := checkAggregator(host.Tree, n.Aggregator(), sel.Tool); err != nil {
		return NormalizedOptions{}, err
	}

	if kind == KindApplication {
		if err := n.resolvePackage(); err != nil {
			return NormalizedOptions{}, err
		}
	}

	output.Debug("normalized options",
		"generator", kind,
		"project", n.ProjectName,
		"root", n.ProjectRoot,
		"plugin", sel.Plugin,
		"aggregator", n.AggregatorProjectRoot)
	return n, nil
}

// resolvePackage derives the Java package and main class of an application.
func (n *NormalizedOptions) resolvePackage() error {
	n.JavaPackage = n.Options.PackageName
	if n.JavaPackage == "" {
		n.JavaPackage = naming.PackageName(n.GroupID, n.SimpleProjectName)
	}
	if err := templates.ValidatePackageName(n.JavaPackage); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "packageName",
			"Pass a valid Java package with --package-name.")
	}

	n.PackageDirectory = naming.PackageDirectory(n.JavaPackage)
	n.ClassName = naming.ClassName(n.SimpleProjectName)
	if err := templates.ValidateJavaIdentifier(n.ClassName); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "name", "")
	}

	n.MainClass = n.JavaPackage + "." + n.ClassName + "Application"
	if n.Language == LanguageKotlin && n.Framework != FrameworkQuarkus {
		n.MainClass += "Kt"
	}
	return nil
}
