package generate

import (
	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/generator"
)

// NewApplicationCmd creates the generate application command.
func NewApplicationCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		pf           cmdutil.ProjectFlags
		rf           cmdutil.RunFlags
		packaging    string
		configFormat string
		packageName  string
	)

	c := &cobra.Command{
		Use:     "application <name>",
		Aliases: []string{"app"},
		Short:   "Generate a Java or Kotlin application",
		Long: `Generate a runnable application built with Maven or Gradle.

Examples:
  # Spring Boot application in nx-maven/apps/my-app
  jvmgen generate application my-app --directory apps --group-id com.example

  # Kotlin Micronaut service with YAML configuration
  jvmgen g app orders --language kotlin --framework micronaut --config-format .yml

  # Preview the changes
  jvmgen g app my-app --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			opts := pf.Options(args[0])
			opts.Packaging = packaging
			opts.ConfigFormat = configFormat
			opts.PackageName = packageName
			return runGenerator(c, cfg, generator.ApplicationGenerator{}, opts, &rf)
		},
	}

	pf.AddTo(c)
	rf.AddTo(c)
	c.Flags().StringVar(&packaging, "packaging", "",
		"Packaging: jar or war (default jar)")
	c.Flags().StringVar(&configFormat, "config-format", "",
		"Application configuration format: .properties or .yml (default .properties)")
	c.Flags().StringVar(&packageName, "package-name", "",
		"Java package (default: groupId plus project name)")

	return c
}
