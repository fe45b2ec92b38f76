package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/cmdutil"
	"github.com/jvmgen/cli/internal/config"
	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the jvmgen configuration file",
		Long: `Validate the jvmgen configuration file against the internal schema.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Every key is known and every value has the right type and format

The config path is resolved using precedence:
  --config flag > JVMGEN_CONFIG env > ~/.jvmgen/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return cmdutil.ReportError("resolving config path", err)
	}

	output.Debug("validating config", "path", path)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.ReportError("checking config file", err)
	}
	if !exists {
		return cmdutil.ReportError("config vet failed", oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'jvmgen config init' to create default configuration."))
	}

	validator, err := config.NewValidator()
	if err != nil {
		return cmdutil.ReportError("creating validator", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var validationErrs config.ValidationErrors
		if errors.As(err, &validationErrs) {
			fmt.Fprintln(c.ErrOrStderr(), "Error: config validation failed")
			fmt.Fprintf(c.ErrOrStderr(), "  File: %s\n\n", path)
			for _, e := range validationErrs {
				fmt.Fprintf(c.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
			}
			return &oerrors.ExitError{Err: err, Code: oerrors.ExitValidationError, Printed: true}
		}
		return cmdutil.ReportError("validating config", err)
	}

	output.Println(output.FormatCheckmark("Configuration is valid: " + path))
	return nil
}
