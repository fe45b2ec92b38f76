package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	homeDirName    = ".jvmgen"
	configFileName = "config.yaml"
)

// Paths locates the per-user jvmgen files.
type Paths struct {
	// HomeDir holds everything jvmgen keeps for a user.
	HomeDir string

	// ConfigFile is read by every command and written by 'config init'.
	ConfigFile string
}

// DefaultPaths places the jvmgen directory in the user's home directory.
func DefaultPaths() (*Paths, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(userHome, homeDirName)
	return &Paths{
		HomeDir:    home,
		ConfigFile: filepath.Join(home, configFileName),
	}, nil
}

// GetConfigFile returns JVMGEN_CONFIG when set, else the file in the jvmgen
// home directory. The file does not have to exist.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvVar("config")); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath resolves a leading "~" or "~/" in config and workspace paths.
// "~user" forms are returned unchanged.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if p == "~" {
		return userHome, nil
	}
	return filepath.Join(userHome, p[2:]), nil
}
