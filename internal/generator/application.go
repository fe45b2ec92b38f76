package generator

import (
	"context"

	"github.com/jvmgen/cli/internal/plugin"
	"github.com/jvmgen/cli/internal/templates"
)

// ApplicationGenerator creates a runnable Maven or Gradle application.
type ApplicationGenerator struct{}

// Name implements Generator.
func (ApplicationGenerator) Name() string { return string(KindApplication) }

// Description implements Generator.
func (ApplicationGenerator) Description() string {
	return "Java or Kotlin application built with Maven or Gradle"
}

// Generate implements Generator.
func (ApplicationGenerator) Generate(ctx context.Context, host *Host, opts Options) (*Result, error) {
	return run(ctx, host, KindApplication, ApplicationDefaults(opts), applicationTemplateSets)
}

func applicationTemplateSets(n NormalizedOptions) []string {
	build := templates.ApplicationMaven
	if n.Plugin.Tool == plugin.Gradle {
		build = templates.ApplicationGradle
	}

	sources := templates.ApplicationJava
	if n.Language == LanguageKotlin {
		sources = templates.ApplicationKotlin
	}

	return []string{build, sources, templates.ApplicationResource}
}

// ApplicationDefaults fills unset application options.
func ApplicationDefaults(opts Options) Options {
	if opts.ProjectType == "" {
		opts.ProjectType = ProjectTypeApplication
	}
	if opts.Packaging == "" {
		opts.Packaging = PackagingJar
	}
	if opts.ConfigFormat == "" {
		opts.ConfigFormat = ConfigFormatProperties
	}
	if opts.Language == "" {
		opts.Language = LanguageJava
	}
	if opts.Framework == "" {
		opts.Framework = FrameworkSpringBoot
	}
	return opts
}
