package workspace

import (
	"encoding/json"
	"fmt"
	"path"

	"sigs.k8s.io/yaml"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/output"
)

// ProjectFile is the per-project configuration file name.
const ProjectFile = "project.json"

// TargetConfiguration is a runnable target of a project.
type TargetConfiguration struct {
	Executor string         `json:"executor"`
	Outputs  []string       `json:"outputs,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

// ProjectConfiguration is the content of a project.json file.
type ProjectConfiguration struct {
	Name        string                         `json:"name"`
	Schema      string                         `json:"$schema,omitempty"`
	Root        string                         `json:"-"`
	ProjectType string                         `json:"projectType,omitempty"`
	SourceRoot  string                         `json:"sourceRoot,omitempty"`
	Targets     map[string]TargetConfiguration `json:"targets,omitempty"`
	Tags        []string                       `json:"tags"`
}

// Registry is the workspace project graph, backed by project.json files in a Tree.
type Registry struct {
	tree *Tree
}

// NewRegistry creates a registry over tree.
func NewRegistry(tree *Tree) *Registry {
	return &Registry{tree: tree}
}

// Projects returns every registered project keyed by name.
func (r *Registry) Projects() (map[string]ProjectConfiguration, error) {
	files, err := r.tree.FindFiles(ProjectFile)
	if err != nil {
		return nil, err
	}

	projects := make(map[string]ProjectConfiguration, len(files))
	for _, f := range files {
		data, err := r.tree.Read(f)
		if err != nil {
			return nil, err
		}

		var cfg ProjectConfiguration
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid project configuration: %v", err), f, "", "")
		}

		cfg.Root = path.Dir(f)
		if cfg.Name == "" {
			cfg.Name = path.Base(cfg.Root)
		}
		if prev, dup := projects[cfg.Name]; dup {
			output.Warn("duplicate project name", "name", cfg.Name, "roots", prev.Root+", "+cfg.Root)
			continue
		}
		projects[cfg.Name] = cfg
	}
	return projects, nil
}

// ReadProject returns the configuration of the named project.
func (r *Registry) ReadProject(name string) (ProjectConfiguration, error) {
	projects, err := r.Projects()
	if err != nil {
		return ProjectConfiguration{}, err
	}

	cfg, ok := projects[name]
	if !ok {
		return ProjectConfiguration{}, oerrors.NewNotFoundError(
			fmt.Sprintf("cannot find configuration for project %q", name), "",
			"List registered projects by their project.json name field.")
	}
	return cfg, nil
}

// AddProject writes <root>/project.json for a new project. It fails when the
// name is taken or the root already holds a project.
func (r *Registry) AddProject(name string, cfg ProjectConfiguration) error {
	if cfg.Root == "" {
		return oerrors.NewValidationError("project root must not be empty", "", "root", "")
	}

	projects, err := r.Projects()
	if err != nil {
		return err
	}
	if existing, ok := projects[name]; ok {
		return &oerrors.DetailError{
			Type:     "project already exists",
			Message:  fmt.Sprintf("a project named %q already exists", name),
			Location: existing.Root,
			Hint:     "Choose a different name or directory.",
			Cause:    oerrors.ErrProjectExists,
		}
	}

	file := path.Join(cfg.Root, ProjectFile)
	if r.tree.Exists(file) {
		return &oerrors.DetailError{
			Type:     "project already exists",
			Message:  fmt.Sprintf("%s already exists", file),
			Location: file,
			Cause:    oerrors.ErrProjectExists,
		}
	}

	cfg.Name = name
	if cfg.Schema == "" {
		cfg.Schema = naming.OffsetFromRoot(cfg.Root) + "node_modules/nx/schemas/project-schema.json"
	}
	if cfg.Tags == nil {
		cfg.Tags = []string{}
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", file, err)
	}

	output.Debug("registering project", "name", name, "root", cfg.Root)
	return r.tree.Write(file, append(data, '\n'))
}
