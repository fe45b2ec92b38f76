// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jvmgen/cli/internal/cmd/config"
	"github.com/jvmgen/cli/internal/cmd/generate"
	"github.com/jvmgen/cli/internal/cmdtypes"
	jconfig "github.com/jvmgen/cli/internal/config"
	"github.com/jvmgen/cli/internal/output"
)

// NewRootCmd creates the root command for the jvmgen CLI.
func NewRootCmd() *cobra.Command {
	var (
		configFlag     string
		workspaceFlag  string
		verboseFlag    bool
		timestampsFlag bool
	)

	// cfg is filled in by PersistentPreRunE before any subcommand runs.
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "jvmgen",
		Short: "Scaffold Maven and Gradle projects in Nx workspaces",
		Long: `jvmgen generates JVM projects inside an Nx workspace: Maven parent projects
and Java or Kotlin applications built with Maven or Gradle.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeGlobals(c, cfg, configFlag, workspaceFlag, verboseFlag, timestampsFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: JVMGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "Nx workspace root (env: JVMGEN_WORKSPACE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(generate.NewGenerateCmd(cfg))
	rootCmd.AddCommand(config.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionsCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration into cfg.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, configFlag, workspaceFlag string, verbose, timestamps bool) error {
	configPath, err := jconfig.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	loader := jconfig.NewLoader()
	loaded, loadErr := loader.Load(configPath.String())

	cfg.Loader = loader
	cfg.Config = loaded
	cfg.ConfigPath = configPath.String()
	cfg.WorkspaceFlag = workspaceFlag
	cfg.Verbose = verbose

	// Resolve timestamps: flag (if explicitly set) > env > config > default (true)
	ts := loader.Resolve(jconfig.KeyTimestamps, jconfig.Flag(timestamps, c.Flags().Changed("timestamps")))
	output.SetupLogging(output.LogConfig{
		Verbose:    verbose,
		Timestamps: output.BoolPtr(ts.Bool()),
	})

	// Don't fail here; commands that need config values fall back to defaults.
	if loadErr != nil {
		output.Warn("config file ignored", "path", configPath.String(), "error", loadErr)
	}

	jconfig.LogResolvedValues([]jconfig.ResolvedValue{configPath, ts})
	output.Debug("initializing CLI",
		"config", cfg.ConfigPath,
		"configFound", loader.Found(),
		"workspace", workspaceFlag,
	)

	return nil
}
