package generator

import (
	"context"

	"github.com/jvmgen/cli/internal/templates"
)

// ParentProjectGenerator creates a Maven parent project (pom packaging).
type ParentProjectGenerator struct{}

// Name implements Generator.
func (ParentProjectGenerator) Name() string { return string(KindParentProject) }

// Description implements Generator.
func (ParentProjectGenerator) Description() string {
	return "Maven parent project with dependency and plugin management"
}

// Generate implements Generator.
func (ParentProjectGenerator) Generate(ctx context.Context, host *Host, opts Options) (*Result, error) {
	return run(ctx, host, KindParentProject, ParentProjectDefaults(opts), func(NormalizedOptions) []string {
		return []string{templates.ParentProjectMaven}
	})
}

// ParentProjectDefaults fills unset parent project options.
func ParentProjectDefaults(opts Options) Options {
	if opts.ProjectType == "" {
		opts.ProjectType = ProjectTypeApplication
	}
	if opts.Packaging == "" {
		opts.Packaging = PackagingPom
	}
	if opts.Language == "" {
		opts.Language = LanguageJava
	}
	if opts.Framework == "" {
		opts.Framework = FrameworkNone
	}
	return opts
}
