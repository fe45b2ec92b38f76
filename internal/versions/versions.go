// Package versions holds the third-party framework and plugin versions written
// into generated build files.
package versions

import (
	"fmt"

	"github.com/BurntSushi/toml"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

// Table is an immutable set of version strings. Pass it by value.
type Table struct {
	Java                   string `toml:"java" json:"java" yaml:"java"`
	Kotlin                 string `toml:"kotlin" json:"kotlin" yaml:"kotlin"`
	SpringBoot             string `toml:"springBoot" json:"springBoot" yaml:"springBoot"`
	Quarkus                string `toml:"quarkus" json:"quarkus" yaml:"quarkus"`
	Micronaut              string `toml:"micronaut" json:"micronaut" yaml:"micronaut"`
	MicronautCore          string `toml:"micronautCore" json:"micronautCore" yaml:"micronautCore"`
	MicronautSerialization string `toml:"micronautSerialization" json:"micronautSerialization" yaml:"micronautSerialization"`
	MicronautTestResources string `toml:"micronautTestResources" json:"micronautTestResources" yaml:"micronautTestResources"`
	MicronautMavenPlugin   string `toml:"micronautMavenPlugin" json:"micronautMavenPlugin" yaml:"micronautMavenPlugin"`
	MicronautGradlePlugin  string `toml:"micronautGradlePlugin" json:"micronautGradlePlugin" yaml:"micronautGradlePlugin"`
	SpringDependencyMgmt   string `toml:"springDependencyManagement" json:"springDependencyManagement" yaml:"springDependencyManagement"`
	JUnit                  string `toml:"junit" json:"junit" yaml:"junit"`
	MavenCompilerPlugin    string `toml:"mavenCompilerPlugin" json:"mavenCompilerPlugin" yaml:"mavenCompilerPlugin"`
	MavenEnforcerPlugin    string `toml:"mavenEnforcerPlugin" json:"mavenEnforcerPlugin" yaml:"mavenEnforcerPlugin"`
	MavenResourcesPlugin   string `toml:"mavenResourcesPlugin" json:"mavenResourcesPlugin" yaml:"mavenResourcesPlugin"`
	MavenWarPlugin         string `toml:"mavenWarPlugin" json:"mavenWarPlugin" yaml:"mavenWarPlugin"`
	MavenSurefirePlugin    string `toml:"mavenSurefirePlugin" json:"mavenSurefirePlugin" yaml:"mavenSurefirePlugin"`
	MavenFailsafePlugin    string `toml:"mavenFailsafePlugin" json:"mavenFailsafePlugin" yaml:"mavenFailsafePlugin"`
}

// Default returns the built-in version table.
func Default() Table {
	return Table{
		Java:                   "17",
		Kotlin:                 "1.9.22",
		SpringBoot:             "3.2.2",
		Quarkus:                "3.6.9",
		Micronaut:              "4.2.4",
		MicronautCore:          "4.2.3",
		MicronautSerialization: "2.7.1",
		MicronautTestResources: "2.3.3",
		MicronautMavenPlugin:   "4.2.1",
		MicronautGradlePlugin:  "4.2.1",
		SpringDependencyMgmt:   "1.1.4",
		JUnit:                  "5.10.1",
		MavenCompilerPlugin:    "3.12.1",
		MavenEnforcerPlugin:    "3.4.1",
		MavenResourcesPlugin:   "3.3.1",
		MavenWarPlugin:         "3.4.0",
		MavenSurefirePlugin:    "3.2.5",
		MavenFailsafePlugin:    "3.2.5",
	}
}

// LoadFile decodes a TOML table from path on top of the defaults. Keys must
// match an entry name exactly, including case; anything else is rejected.
func LoadFile(path string) (Table, error) {
	table := Default()

	meta, err := toml.DecodeFile(path, &table)
	if err != nil {
		return Table{}, fmt.Errorf("reading versions file %s: %w", path, err)
	}

	known := make(map[string]bool)
	for _, e := range table.Entries() {
		known[e.Key] = true
	}
	for _, key := range meta.Keys() {
		if !known[key.String()] {
			return Table{}, oerrors.NewValidationError(
				fmt.Sprintf("unknown version key %q", key.String()),
				path, key.String(),
				"Valid keys are listed by 'jvmgen versions'.")
		}
	}

	if missing := table.firstEmpty(); missing != "" {
		return Table{}, oerrors.NewValidationError(
			"version must not be empty", path, missing, "")
	}

	return table, nil
}

// Resolve returns the table from path, or the defaults when path is empty.
func Resolve(path string) (Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// firstEmpty returns the key of the first empty entry.
func (t Table) firstEmpty() string {
	for _, e := range t.Entries() {
		if e.Version == "" {
			return e.Key
		}
	}
	return ""
}

// Entry is a single key/version pair.
type Entry struct {
	Key     string
	Version string
}

// Entries returns the table as ordered pairs.
func (t Table) Entries() []Entry {
	return []Entry{
		{"java", t.Java},
		{"kotlin", t.Kotlin},
		{"springBoot", t.SpringBoot},
		{"quarkus", t.Quarkus},
		{"micronaut", t.Micronaut},
		{"micronautCore", t.MicronautCore},
		{"micronautSerialization", t.MicronautSerialization},
		{"micronautTestResources", t.MicronautTestResources},
		{"micronautMavenPlugin", t.MicronautMavenPlugin},
		{"micronautGradlePlugin", t.MicronautGradlePlugin},
		{"springDependencyManagement", t.SpringDependencyMgmt},
		{"junit", t.JUnit},
		{"mavenCompilerPlugin", t.MavenCompilerPlugin},
		{"mavenEnforcerPlugin", t.MavenEnforcerPlugin},
		{"mavenResourcesPlugin", t.MavenResourcesPlugin},
		{"mavenWarPlugin", t.MavenWarPlugin},
		{"mavenSurefirePlugin", t.MavenSurefirePlugin},
		{"mavenFailsafePlugin", t.MavenFailsafePlugin},
	}
}
