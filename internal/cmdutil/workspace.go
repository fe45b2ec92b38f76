package cmdutil

import (
	"os"

	"github.com/jvmgen/cli/internal/cmdtypes"
	"github.com/jvmgen/cli/internal/config"
	"github.com/jvmgen/cli/internal/workspace"
)

// Loader returns the loader of cfg, or an empty one that only knows defaults
// and environment variables when the command runs without a root command.
func Loader(cfg *cmdtypes.GlobalConfig) *config.Loader {
	if cfg != nil && cfg.Loader != nil {
		return cfg.Loader
	}
	return config.NewLoader()
}

// ResolveWorkspace returns the workspace root: the --workspace flag, then
// JVMGEN_WORKSPACE, then the config file, then the nearest nx.json above the
// working directory.
func ResolveWorkspace(loader *config.Loader, flag string) (string, error) {
	resolved := loader.Resolve(config.KeyWorkspace, config.Flag(flag, flag != ""))
	config.LogResolvedValues([]config.ResolvedValue{resolved})

	start := resolved.String()
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}

	if expanded, err := config.ExpandPath(start); err == nil {
		start = expanded
	}
	return workspace.FindRoot(start)
}
