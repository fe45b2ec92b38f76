package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

// NxJSONFile is the workspace configuration file at the workspace root.
const NxJSONFile = "nx.json"

// Reader is the read side of a workspace tree.
type Reader interface {
	Read(path string) ([]byte, error)
}

// NxJSON is the subset of nx.json jvmgen reads.
type NxJSON struct {
	Plugins []PluginEntry `json:"plugins,omitempty"`
}

// PluginEntry is one entry of the nx.json plugins list. Entries are either a
// bare plugin name or an object with options.
type PluginEntry struct {
	Plugin  string         `json:"plugin"`
	Options map[string]any `json:"options,omitempty"`
}

// UnmarshalJSON accepts both the string and object forms.
func (p *PluginEntry) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		p.Plugin = name
		p.Options = nil
		return nil
	}

	type entry PluginEntry
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("plugin entry must be a string or an object: %w", err)
	}
	*p = PluginEntry(e)
	return nil
}

// StringOption returns a string option or def when absent or not a string.
func (p PluginEntry) StringOption(key, def string) string {
	if v, ok := p.Options[key].(string); ok && v != "" {
		return v
	}
	return def
}

// ReadNxJSON parses nx.json from the tree.
func ReadNxJSON(r Reader) (*NxJSON, error) {
	data, err := r.Read(NxJSONFile)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return nil, &oerrors.DetailError{
				Type:     "workspace not found",
				Message:  "nx.json is missing from the workspace root",
				Location: NxJSONFile,
				Hint:     "Run jvmgen inside an Nx workspace or pass --workspace.",
				Cause:    oerrors.ErrWorkspaceNotFound,
			}
		}
		return nil, err
	}

	var cfg NxJSON
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("nx.json is not valid JSON: %v", err), NxJSONFile, "", "")
	}
	return &cfg, nil
}

// FindRoot walks up from start to the nearest directory holding nx.json.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, NxJSONFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &oerrors.DetailError{
				Type:     "workspace not found",
				Message:  fmt.Sprintf("no %s found in %s or any parent directory", NxJSONFile, start),
				Location: start,
				Hint:     "Run jvmgen inside an Nx workspace or pass --workspace.",
				Cause:    oerrors.ErrWorkspaceNotFound,
			}
		}
		dir = parent
	}
}
