// Package generator implements the project generators: option normalization,
// project registration, template rendering and aggregator registration.
package generator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/workspace"
)

// Generator scaffolds one kind of project into a host workspace.
type Generator interface {
	Name() string
	Description() string
	Generate(ctx context.Context, host *Host, opts Options) (*Result, error)
}

// Result summarizes a generator run. All changes are staged in the host tree.
type Result struct {
	ProjectName string
	ProjectRoot string

	// Files are the rendered template files.
	Files []string

	// AggregatorChanged is false when the project was already registered.
	AggregatorChanged bool
}

var generators = map[string]Generator{
	string(KindParentProject): ParentProjectGenerator{},
	string(KindApplication):   ApplicationGenerator{},
}

// Get returns the generator registered under name.
func Get(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q; valid generators: %s", name, strings.Join(Names(), ", "))
	}
	return g, nil
}

// Names returns the registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run executes the shared generator sequence: normalize, register the project,
// render templates, register with the aggregator, then format.
func run(ctx context.Context, host *Host, kind Kind, opts Options, templateSets func(NormalizedOptions) []string) (*Result, error) {
	n, err := Normalize(host, kind, opts)
	if err != nil {
		return nil, err
	}

	cfg := workspace.ProjectConfiguration{
		Root:        n.ProjectRoot,
		ProjectType: n.ProjectType,
		Targets: map[string]workspace.TargetConfiguration{
			n.Plugin.BuildTargetName: n.Plugin.Target(),
		},
		Tags: n.ParsedTags,
	}
	if kind == KindApplication {
		cfg.SourceRoot = n.SourceRoot()
	}
	if err := host.Projects.AddProject(n.ProjectName, cfg); err != nil {
		return nil, err
	}

	vars, err := n.TemplateVars().Map()
	if err != nil {
		return nil, err
	}

	result := &Result{ProjectName: n.ProjectName, ProjectRoot: n.ProjectRoot}
	for _, set := range templateSets(n) {
		files, err := host.Renderer.GenerateFiles(host.Tree, set, n.ProjectRoot, vars)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", set, err)
		}
		result.Files = append(result.Files, files...)
	}

	result.AggregatorChanged, err = RegisterWithAggregator(host.Tree, n.Aggregator(), n.Plugin.Tool)
	if err != nil {
		return nil, err
	}

	if !n.SkipFormat {
		if err := host.Formatter.FormatFiles(ctx, host.Tree); err != nil {
			return nil, fmt.Errorf("formatting files: %w", err)
		}
	}

	output.Debug("generated project", "generator", kind, "project", n.ProjectName, "files", len(result.Files))
	return result, nil
}
