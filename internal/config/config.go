// Package config provides configuration loading and management.
package config

import (
	"strings"
)

// Environment variable prefix for jvmgen configuration.
const envPrefix = "JVMGEN"

// Configuration keys. Nested keys use dots, as in the config file.
const (
	KeyWorkspace      = "workspace"
	KeyPlugin         = "plugin"
	KeyVersionsFile   = "versionsFile"
	KeySkipFormat     = "skipFormat"
	KeyGroupID        = "defaults.groupId"
	KeyProjectVersion = "defaults.projectVersion"
	KeyXMLIndent      = "format.xmlIndent"
	KeyTimestamps     = "log.timestamps"
)

// Keys returns every configuration key in file order.
func Keys() []string {
	return []string{
		KeyWorkspace,
		KeyPlugin,
		KeyVersionsFile,
		KeySkipFormat,
		KeyGroupID,
		KeyProjectVersion,
		KeyXMLIndent,
		KeyTimestamps,
	}
}

// EnvVar returns the environment variable that sets key, e.g.
// JVMGEN_DEFAULTS_GROUPID for defaults.groupId.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// DefaultsConfig holds default generator option values.
type DefaultsConfig struct {
	// GroupID is used when --group-id is not given.
	GroupID string `mapstructure:"groupId" yaml:"groupId,omitempty" json:"groupId,omitempty"`

	// ProjectVersion is used when --project-version is not given.
	ProjectVersion string `mapstructure:"projectVersion" yaml:"projectVersion,omitempty" json:"projectVersion,omitempty"`
}

// FormatConfig controls the formatting pass.
type FormatConfig struct {
	// XMLIndent is the number of spaces per XML level; 0 indents with tabs.
	XMLIndent int `mapstructure:"xmlIndent" yaml:"xmlIndent" json:"xmlIndent,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the jvmgen configuration.
// Loaded from ~/.jvmgen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Workspace is the Nx workspace root. Env: JVMGEN_WORKSPACE
	Workspace string `mapstructure:"workspace" yaml:"workspace,omitempty" json:"workspace,omitempty"`

	// Plugin forces the build plugin instead of detecting it from nx.json.
	Plugin string `mapstructure:"plugin" yaml:"plugin,omitempty" json:"plugin,omitempty"`

	// VersionsFile is a TOML file overriding the framework version table.
	VersionsFile string `mapstructure:"versionsFile" yaml:"versionsFile,omitempty" json:"versionsFile,omitempty"`

	// SkipFormat disables the formatting pass.
	SkipFormat bool `mapstructure:"skipFormat" yaml:"skipFormat" json:"skipFormat,omitempty"`

	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`
	Format   FormatConfig   `mapstructure:"format" yaml:"format" json:"format"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `jvmgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Defaults: DefaultsConfig{
			ProjectVersion: "0.0.1-SNAPSHOT",
		},
		Format: FormatConfig{
			XMLIndent: 2,
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// defaultValues flattens DefaultConfig into key/value pairs.
func defaultValues() map[string]any {
	cfg := DefaultConfig()
	return map[string]any{
		KeyWorkspace:      cfg.Workspace,
		KeyPlugin:         cfg.Plugin,
		KeyVersionsFile:   cfg.VersionsFile,
		KeySkipFormat:     cfg.SkipFormat,
		KeyGroupID:        cfg.Defaults.GroupID,
		KeyProjectVersion: cfg.Defaults.ProjectVersion,
		KeyXMLIndent:      cfg.Format.XMLIndent,
		KeyTimestamps:     *cfg.Log.Timestamps,
	}
}
