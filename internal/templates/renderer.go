package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"text/template"

	"github.com/jvmgen/cli/internal/output"
)

// templateSuffix marks files rendered through text/template. Other files are
// copied verbatim.
const templateSuffix = ".tmpl"

// pathVar matches __key__ placeholders in template paths.
var pathVar = regexp.MustCompile(`__([A-Za-z][A-Za-z0-9]*)__`)

// Renderer renders template sets from a file system.
type Renderer struct {
	fsys fs.FS
}

// NewRenderer creates a renderer over the embedded template sets.
func NewRenderer() *Renderer {
	return &Renderer{fsys: FS()}
}

// NewRendererFS creates a renderer over fsys, whose top-level directories are
// template sets.
func NewRendererFS(fsys fs.FS) *Renderer {
	return &Renderer{fsys: fsys}
}

// RenderFile renders a single template with data. Missing keys are errors.
func (r *Renderer) RenderFile(name string, content []byte, data map[string]any) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// GenerateFiles renders every file of templateDir into destDir through w and
// returns the written paths in walk order. Path segments of the form __key__ are
// replaced with data[key] and the .tmpl suffix is stripped.
func (r *Renderer) GenerateFiles(w Writer, templateDir, destDir string, data map[string]any) ([]string, error) {
	if _, err := fs.Stat(r.fsys, templateDir); err != nil {
		return nil, fmt.Errorf("template set %s: %w", templateDir, err)
	}

	var written []string
	err := fs.WalkDir(r.fsys, templateDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, templateDir+"/")
		target, err := substitutePath(rel, data)
		if err != nil {
			return fmt.Errorf("template %s: %w", p, err)
		}

		content, err := fs.ReadFile(r.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		if strings.HasSuffix(target, templateSuffix) {
			target = strings.TrimSuffix(target, templateSuffix)
			if content, err = r.RenderFile(p, content, data); err != nil {
				return err
			}
		}

		dest := path.Join(destDir, target)
		if err := w.Write(dest, content); err != nil {
			return err
		}
		output.Debug("rendered template", "template", p, "path", dest)
		written = append(written, dest)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

// substitutePath replaces __key__ placeholders in p with values from data.
func substitutePath(p string, data map[string]any) (string, error) {
	var missing string
	out := pathVar.ReplaceAllStringFunc(p, func(m string) string {
		key := pathVar.FindStringSubmatch(m)[1]
		v, ok := data[key]
		if !ok {
			if missing == "" {
				missing = key
			}
			return m
		}
		return fmt.Sprint(v)
	})
	if missing != "" {
		return "", fmt.Errorf("no value for path variable %q", missing)
	}
	return path.Clean(out), nil
}
