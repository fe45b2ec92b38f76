package config

import (
	"os"
	"sort"

	"github.com/spf13/cast"

	"github.com/jvmgen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with the source it was taken from.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// String returns the value as a string.
func (r ResolvedValue) String() string {
	return cast.ToString(r.Value)
}

// Bool returns the value as a bool.
func (r ResolvedValue) Bool() bool {
	return cast.ToBool(r.Value)
}

// Int returns the value as an int.
func (r ResolvedValue) Int() int {
	return cast.ToInt(r.Value)
}

// FlagValue is a command-line flag value and whether the user set it.
type FlagValue struct {
	Value   any
	Changed bool
}

// Flag returns a FlagValue.
func Flag(value any, changed bool) FlagValue {
	return FlagValue{Value: value, Changed: changed}
}

// Resolve resolves key using precedence:
// (1) flag, (2) JVMGEN_* env, (3) config file, (4) built-in default.
func (l *Loader) Resolve(key string, flag FlagValue) ResolvedValue {
	envValue, envSet := os.LookupEnv(EnvVar(key))

	candidates := []struct {
		source ConfigSource
		value  any
		ok     bool
	}{
		{SourceFlag, flag.Value, flag.Changed},
		{SourceEnv, envValue, envSet},
		{SourceConfig, l.file.Get(key), l.file.IsSet(key)},
		{SourceDefault, defaultValues()[key], true},
	}

	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) JVMGEN_CONFIG env, (3) ~/.jvmgen/config.yaml default
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	result := ResolvedValue{Key: "config", Shadowed: make(map[ConfigSource]any)}

	envValue := os.Getenv(EnvVar("config"))

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	// Resolve using precedence: flag > env > default
	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.Value = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)

		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
