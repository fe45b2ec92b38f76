// Package format normalizes staged workspace files before they are committed.
package format

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"

	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/workspace"
)

// DefaultXMLIndent is the number of spaces per XML nesting level.
const DefaultXMLIndent = 2

// Tree is the staged tree the formatter rewrites.
type Tree interface {
	Changes() []workspace.FileChange
	Write(path string, content []byte) error
}

// Formatter rewrites created and updated files in a consistent layout.
type Formatter struct {
	// XMLIndent is the number of spaces per level; zero or less indents with tabs.
	XMLIndent int
}

// New creates a formatter with the given XML indentation.
func New(xmlIndent int) *Formatter {
	return &Formatter{XMLIndent: xmlIndent}
}

// FormatFiles formats every staged create or update in t.
func (f *Formatter) FormatFiles(ctx context.Context, t Tree) error {
	for _, c := range t.Changes() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Type == workspace.ChangeDelete {
			continue
		}

		formatted, err := f.Format(c.Path, c.Content)
		if err != nil {
			return err
		}
		if bytes.Equal(formatted, c.Content) {
			continue
		}

		output.Debug("formatted", "path", c.Path)
		if err := t.Write(c.Path, formatted); err != nil {
			return err
		}
	}
	return nil
}

// Format returns content laid out according to the file type of name.
func (f *Formatter) Format(name string, content []byte) ([]byte, error) {
	switch path.Ext(name) {
	case ".xml":
		return f.formatXML(name, content)
	case ".json":
		return formatJSON(name, content)
	default:
		return formatText(content), nil
	}
}

func (f *Formatter) formatXML(name string, content []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}

	settings := etree.NewIndentSettings()
	if f.XMLIndent > 0 {
		settings.Spaces = f.XMLIndent
	} else {
		settings.UseTabs = true
	}
	doc.IndentWithSettings(settings)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return formatText(out), nil
}

func formatJSON(name string, content []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(content), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// formatText strips trailing blanks from every line and ends the text with
// exactly one newline.
func formatText(content []byte) []byte {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}

	text := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if text == "" {
		return []byte{}
	}
	return []byte(text + "\n")
}
