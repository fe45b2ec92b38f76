package generator

import (
	"context"

	"github.com/jvmgen/cli/internal/format"
	"github.com/jvmgen/cli/internal/schema"
	"github.com/jvmgen/cli/internal/templates"
	"github.com/jvmgen/cli/internal/versions"
	"github.com/jvmgen/cli/internal/workspace"
)

// TreeAccess is the staged file tree generators read and write.
type TreeAccess interface {
	Read(path string) ([]byte, error)
	Exists(path string) bool
	Write(path string, content []byte) error
	Changes() []workspace.FileChange
}

// ProjectRegistry is the workspace project graph.
type ProjectRegistry interface {
	ReadProject(name string) (workspace.ProjectConfiguration, error)
	AddProject(name string, cfg workspace.ProjectConfiguration) error
}

// TemplateRenderer renders a template set into the tree.
type TemplateRenderer interface {
	GenerateFiles(w templates.Writer, templateDir, destDir string, data map[string]any) ([]string, error)
}

// Formatter formats the staged changes of a tree.
type Formatter interface {
	FormatFiles(ctx context.Context, t format.Tree) error
}

// OptionsValidator checks options against a named schema definition.
type OptionsValidator interface {
	Validate(definition string, value any) error
}

// Host bundles the collaborators a generator runs against.
type Host struct {
	Tree      TreeAccess
	Projects  ProjectRegistry
	Renderer  TemplateRenderer
	Formatter Formatter
	Validator OptionsValidator

	// Versions is injected into every generated build file.
	Versions versions.Table

	// Plugin overrides the build plugin detected from nx.json when set.
	Plugin string
}

// NewWorkspaceHost wires the standard collaborators over tree.
func NewWorkspaceHost(tree *workspace.Tree, table versions.Table, xmlIndent int, pluginOverride string) (*Host, error) {
	validator, err := schema.NewValidator()
	if err != nil {
		return nil, err
	}

	return &Host{
		Tree:      tree,
		Projects:  workspace.NewRegistry(tree),
		Renderer:  templates.NewRenderer(),
		Formatter: format.New(xmlIndent),
		Validator: validator,
		Versions:  table,
		Plugin:    pluginOverride,
	}, nil
}
