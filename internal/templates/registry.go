package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Template set names.
const (
	ParentProjectMaven  = "parent-project/maven"
	ApplicationMaven    = "application/maven"
	ApplicationGradle   = "application/gradle"
	ApplicationJava     = "application/java"
	ApplicationKotlin   = "application/kotlin"
	ApplicationResource = "application/resources"
)

// sets is the internal registry of available template sets.
var sets = map[string]TemplateSet{
	ParentProjectMaven: {
		Name:        ParentProjectMaven,
		Description: "Parent pom.xml with dependency and plugin management",
	},
	ApplicationMaven: {
		Name:        ApplicationMaven,
		Description: "Application pom.xml inheriting the parent project",
	},
	ApplicationGradle: {
		Name:        ApplicationGradle,
		Description: "Application build.gradle.kts",
	},
	ApplicationJava: {
		Name:        ApplicationJava,
		Description: "Java main and test classes",
	},
	ApplicationKotlin: {
		Name:        ApplicationKotlin,
		Description: "Kotlin main and test classes",
	},
	ApplicationResource: {
		Name:        ApplicationResource,
		Description: "application.properties or application.yml",
	},
}

// Get returns a template set by name.
func Get(name string) (TemplateSet, error) {
	s, ok := sets[name]
	if !ok {
		return TemplateSet{}, fmt.Errorf("unknown template set %q; valid sets: %s", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// List returns all template sets ordered by name.
func List() []TemplateSet {
	out := make([]TemplateSet, 0, len(sets))
	for _, name := range Names() {
		out = append(out, sets[name])
	}
	return out
}

// Names returns all template set names, sorted.
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
