// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the jvmgen CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(cfg))
	c.AddCommand(NewConfigVetCmd(cfg))

	return c
}

// configPath returns the resolved config path of cfg, falling back to
// JVMGEN_CONFIG and the default path when run without the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return config.ExpandPath(cfg.ConfigPath)
	}
	resolved, err := config.ResolveConfigPath("")
	if err != nil {
		return "", err
	}
	return config.ExpandPath(resolved.String())
}
