// Package plugin selects the active JVM build plugin from nx.json and maps it to
// the executor and target generated projects use.
package plugin

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/workspace"
)

// BuildTool identifies the build system behind a plugin.
type BuildTool string

const (
	Maven  BuildTool = "maven"
	Gradle BuildTool = "gradle"
)

// Recognized plugin package names.
const (
	MavenPlugin  = "@jnxplus/nx-maven"
	GradlePlugin = "@jnxplus/nx-gradle"
)

// DefaultBuildTargetName is used when the plugin options do not name a target.
const DefaultBuildTargetName = "build"

// descriptor holds the fixed facts about a recognized plugin.
type descriptor struct {
	tool          BuildTool
	rootOption    string
	executor      string
	task          string
	outputs       []string
	buildFileName string
}

var descriptors = map[string]descriptor{
	MavenPlugin: {
		tool:          Maven,
		rootOption:    "mavenRootDirectory",
		executor:      MavenPlugin + ":run-task",
		task:          "install",
		outputs:       []string{"{options.outputDirLocalRepo}"},
		buildFileName: "pom.xml",
	},
	GradlePlugin: {
		tool:          Gradle,
		rootOption:    "gradleRootDirectory",
		executor:      GradlePlugin + ":run-task",
		task:          "build",
		outputs:       []string{"{projectRoot}/build"},
		buildFileName: "build.gradle.kts",
	},
}

// Supported returns the recognized plugin names, sorted.
func Supported() []string {
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Selection is the resolved build plugin for a workspace.
type Selection struct {
	Plugin          string
	Tool            BuildTool
	RootDirectory   string
	BuildTargetName string
	Executor        string
	Task            string
	Outputs         []string
	BuildFileName   string
}

// Target returns the build target configuration new projects receive.
func (s Selection) Target() workspace.TargetConfiguration {
	return workspace.TargetConfiguration{
		Executor: s.Executor,
		Outputs:  append([]string(nil), s.Outputs...),
		Options:  map[string]any{"task": s.Task},
	}
}

// Select reads nx.json and resolves the active plugin. A non-empty override
// names the plugin explicitly and must be recognized.
func Select(r workspace.Reader, override string) (Selection, error) {
	nx, err := workspace.ReadNxJSON(r)
	if err != nil {
		return Selection{}, err
	}

	if override != "" {
		if _, ok := descriptors[override]; !ok {
			return Selection{}, unsupported(fmt.Sprintf("plugin %q is not supported", override), override)
		}
		for _, entry := range nx.Plugins {
			if entry.Plugin == override {
				return selection(entry), nil
			}
		}
		return selection(workspace.PluginEntry{Plugin: override}), nil
	}

	var matches []workspace.PluginEntry
	for _, entry := range nx.Plugins {
		if _, ok := descriptors[entry.Plugin]; ok {
			matches = append(matches, entry)
		}
	}

	switch len(matches) {
	case 0:
		return Selection{}, unsupported("nx.json does not register a JVM build plugin", "")
	case 1:
		return selection(matches[0]), nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Plugin
		}
		return Selection{}, unsupported(
			fmt.Sprintf("nx.json registers several JVM build plugins: %s", strings.Join(names, ", ")), "")
	}
}

func selection(entry workspace.PluginEntry) Selection {
	d := descriptors[entry.Plugin]
	root := strings.Trim(entry.StringOption(d.rootOption, ""), "/")
	if root == "." {
		root = ""
	}

	return Selection{
		Plugin:          entry.Plugin,
		Tool:            d.tool,
		RootDirectory:   root,
		BuildTargetName: entry.StringOption("buildTargetName", DefaultBuildTargetName),
		Executor:        d.executor,
		Task:            d.task,
		Outputs:         d.outputs,
		BuildFileName:   d.buildFileName,
	}
}

func unsupported(message, plugin string) error {
	var context map[string]string
	if plugin != "" {
		context = map[string]string{"Plugin": plugin}
	}
	return oerrors.NewUnsupportedPluginError(message, context,
		fmt.Sprintf("Register exactly one of %s in nx.json, or pass --plugin.", strings.Join(Supported(), ", ")))
}
