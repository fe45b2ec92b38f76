// Package workspace implements the host side of generator runs: a staged file
// tree over a workspace directory, nx.json access and the project registry.
package workspace

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/output"
)

// ChangeType classifies a staged file change.
type ChangeType string

const (
	ChangeCreate ChangeType = "CREATE"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// FileChange is a single staged change.
type FileChange struct {
	// Path is slash-separated and relative to the workspace root.
	Path string

	Type ChangeType

	// Content is the staged content (nil for deletes).
	Content []byte

	// Before is the on-disk content for updates and deletes.
	Before []byte
}

// skippedDirs are never descended into when searching the workspace.
var skippedDirs = map[string]bool{
	".git":         true,
	".gradle":      true,
	".idea":        true,
	".nx":          true,
	"build":        true,
	"dist":         true,
	"node_modules": true,
	"target":       true,
}

// Tree stages writes in memory on top of a workspace directory. Nothing touches
// the disk until Commit. A Tree is not safe for concurrent use.
type Tree struct {
	root    string
	changes map[string]*FileChange
}

// NewTree creates a tree rooted at root.
func NewTree(root string) *Tree {
	return &Tree{
		root:    root,
		changes: make(map[string]*FileChange),
	}
}

// Root returns the workspace directory on disk.
func (t *Tree) Root() string {
	return t.root
}

// normalize cleans p into a slash path relative to the workspace root.
func normalize(p string) (string, error) {
	p = path.Clean(filepath.ToSlash(p))
	if p == "." || p == "" {
		return "", oerrors.NewValidationError("path refers to the workspace root", p, "", "")
	}
	if path.IsAbs(p) || p == ".." || strings.HasPrefix(p, "../") {
		return "", oerrors.NewValidationError("path escapes the workspace root", p, "", "")
	}
	return p, nil
}

func (t *Tree) diskPath(p string) string {
	return filepath.Join(t.root, filepath.FromSlash(p))
}

func (t *Tree) readDisk(p string) ([]byte, bool, error) {
	data, err := os.ReadFile(t.diskPath(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", p, err)
	}
	return data, true, nil
}

// Read returns the staged content of p, falling back to disk.
func (t *Tree) Read(p string) ([]byte, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}

	if c, ok := t.changes[p]; ok {
		if c.Type == ChangeDelete {
			return nil, oerrors.Wrap(oerrors.ErrNotFound, p)
		}
		return bytes.Clone(c.Content), nil
	}

	data, found, err := t.readDisk(p)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, p)
	}
	return data, nil
}

// Exists reports whether p is a file or directory in the staged view.
func (t *Tree) Exists(p string) bool {
	p, err := normalize(p)
	if err != nil {
		return false
	}

	if c, ok := t.changes[p]; ok {
		return c.Type != ChangeDelete
	}
	for staged, c := range t.changes {
		if c.Type != ChangeDelete && strings.HasPrefix(staged, p+"/") {
			return true
		}
	}

	_, err = os.Stat(t.diskPath(p))
	return err == nil
}

// Write stages content for p. Writing content identical to the disk drops any
// pending change for p.
func (t *Tree) Write(p string, content []byte) error {
	p, err := normalize(p)
	if err != nil {
		return err
	}

	before, onDisk, err := t.readDisk(p)
	if err != nil {
		return err
	}

	switch {
	case !onDisk:
		t.changes[p] = &FileChange{Path: p, Type: ChangeCreate, Content: bytes.Clone(content)}
	case bytes.Equal(before, content):
		delete(t.changes, p)
	default:
		t.changes[p] = &FileChange{Path: p, Type: ChangeUpdate, Content: bytes.Clone(content), Before: before}
	}

	output.Debug("staged write", "path", p, "bytes", len(content))
	return nil
}

// Delete stages the removal of p.
func (t *Tree) Delete(p string) error {
	p, err := normalize(p)
	if err != nil {
		return err
	}

	before, onDisk, err := t.readDisk(p)
	if err != nil {
		return err
	}
	if !onDisk {
		delete(t.changes, p)
		return nil
	}
	t.changes[p] = &FileChange{Path: p, Type: ChangeDelete, Before: before}
	return nil
}

// Changes returns the staged changes ordered by path.
func (t *Tree) Changes() []FileChange {
	out := make([]FileChange, 0, len(t.changes))
	for _, c := range t.changes {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// FindFiles returns every file in the staged view whose base name is base,
// ordered by path.
func (t *Tree) FindFiles(base string) ([]string, error) {
	seen := make(map[string]bool)

	err := filepath.WalkDir(t.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != t.root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != base {
			return nil
		}
		rel, err := filepath.Rel(t.root, p)
		if err != nil {
			return err
		}
		seen[filepath.ToSlash(rel)] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("searching workspace for %s: %w", base, err)
	}

	for p, c := range t.changes {
		if path.Base(p) != base {
			continue
		}
		seen[p] = c.Type != ChangeDelete
	}

	files := make([]string, 0, len(seen))
	for p, present := range seen {
		if present {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

// Commit applies the staged changes to disk and clears them.
func (t *Tree) Commit() error {
	for _, c := range t.Changes() {
		target := t.diskPath(c.Path)

		if c.Type == ChangeDelete {
			if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("deleting %s: %w", c.Path, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", c.Path, err)
		}
		if err := os.WriteFile(target, c.Content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Path, err)
		}
		output.Debug("committed", "change", c.Type, "path", c.Path)
	}

	t.changes = make(map[string]*FileChange)
	return nil
}
