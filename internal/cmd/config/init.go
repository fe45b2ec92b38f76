package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/config"
	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/output"
)

const configHeader = `# jvmgen configuration.
# Values are overridden by JVMGEN_* environment variables and command flags.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the jvmgen configuration.

Creates ~/.jvmgen/config.yaml (or the file given by --config) with the
default settings:
  - default groupId and project version for generated projects
  - XML indentation used by the formatter
  - log timestamps

Examples:
  # Initialize configuration
  jvmgen config init

  # Overwrite existing configuration
  jvmgen config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.ReportError("resolving config path", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
	}

	// Check if config exists
	if _, err := os.Stat(path); err == nil && !force {
		return cmdutil.ReportError("config init failed", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.ReportError("encoding default configuration", err)
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.ReportError("config init failed", err)
	}

	// Write config with secure permissions (0600)
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return cmdutil.ReportError("config init failed", err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	output.Println("Validate with: jvmgen config vet")

	return nil
}
