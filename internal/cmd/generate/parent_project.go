package generate

import (
	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/generator"
)

// NewParentProjectCmd creates the generate parent-project command.
func NewParentProjectCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		pf cmdutil.ProjectFlags
		rf cmdutil.RunFlags
	)

	c := &cobra.Command{
		Use:   "parent-project <name>",
		Short: "Generate a Maven parent project",
		Long: `Generate a Maven project with pom packaging that child projects inherit
dependency and plugin management from. Requires the Maven plugin.

Examples:
  # Parent for Quarkus services
  jvmgen generate parent-project services-parent --framework quarkus`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerator(c, cfg, generator.ParentProjectGenerator{}, pf.Options(args[0]), &rf)
		},
	}

	pf.AddTo(c)
	rf.AddTo(c)

	return c
}
