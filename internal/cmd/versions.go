package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/config"
	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/versions"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		outputFormat string
		versionsFile string
	)

	c := &cobra.Command{
		Use:   "versions",
		Short: "Show the framework and plugin versions used in generated builds",
		Long: `Show the version table injected into generated build files.

The built-in table can be overridden with a TOML file given by --versions-file
or the versionsFile config key. Every key printed here may appear in that file.

Examples:
  jvmgen versions
  jvmgen versions -o json --versions-file versions.toml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			resolved := cmdutil.Loader(cfg).Resolve(config.KeyVersionsFile,
				config.Flag(versionsFile, c.Flags().Changed("versions-file")))
			config.LogResolvedValues([]config.ResolvedValue{resolved})

			table, err := versions.Resolve(resolved.String())
			if err != nil {
				return cmdutil.ReportError("loading versions", err)
			}

			text, err := renderVersions(table, outputFormat)
			if err != nil {
				return cmdutil.ReportError("rendering versions", err)
			}
			output.Print(text)
			return nil
		},
	}

	c.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format: yaml or json")
	c.Flags().StringVar(&versionsFile, "versions-file", "", "TOML file overriding the built-in versions")

	return c
}

func renderVersions(table versions.Table, format string) (string, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err := yaml.Marshal(table)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "json":
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unsupported output format %q", format), "", "output", "Use yaml or json.")
	}
}
