package maven

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/output"
)

// defaultIndent is used when a pom carries no indentation to copy.
const defaultIndent = "  "

// AddModule registers projectRoot as a <module> of the aggregator pom at
// aggregatorRoot. It reports whether the pom changed; an existing entry for the
// same path leaves the pom untouched.
func AddModule(rw ReadWriter, aggregatorRoot, projectRoot string) (bool, error) {
	pomPath := PomPath(aggregatorRoot)
	data, err := rw.Read(pomPath)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return false, oerrors.NewAggregatorNotFoundError(
				"aggregator pom.xml does not exist", pomPath,
				"Create the aggregator project first or pass --aggregator-project.")
		}
		return false, err
	}

	rel := naming.RelativePath(aggregatorRoot, projectRoot)
	if rel == "." {
		return false, oerrors.NewValidationError(
			"a project cannot be a module of itself", pomPath, "aggregatorProject", "")
	}

	doc, err := parsePom(data, pomPath)
	if err != nil {
		return false, err
	}
	project := doc.Root()
	unit := indentUnit(project)

	modules := project.SelectElement("modules")
	if modules == nil {
		modules = etree.NewElement("modules")
		appendIndented(project, modules, "\n"+unit, "\n")
	}

	existing := modules.SelectElements("module")
	for _, m := range existing {
		if path.Clean(strings.TrimSpace(m.Text())) == rel {
			output.Debug("module already registered", "pom", pomPath, "module", rel)
			return false, nil
		}
	}

	module := etree.NewElement("module")
	module.SetText(rel)

	if len(existing) > 0 {
		last := existing[len(existing)-1]
		indent := "\n" + unit + unit
		if ws, ok := leadingWhitespace(last); ok {
			indent = "\n" + lastLine(ws)
		}
		i := last.Index()
		modules.InsertChildAt(i+1, etree.NewText(indent))
		modules.InsertChildAt(i+2, module)
	} else {
		closing := "\n" + unit
		if ws, ok := leadingWhitespace(modules); ok {
			closing = "\n" + lastLine(ws)
		}
		appendIndented(modules, module, closing+unit, closing)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return false, fmt.Errorf("encoding %s: %w", pomPath, err)
	}
	if err := rw.Write(pomPath, out); err != nil {
		return false, err
	}

	output.Debug("registered module", "pom", pomPath, "module", rel)
	return true, nil
}

// appendIndented adds child as the last element of parent, preceded by indent.
// Trailing whitespace before the closing tag is kept; when there is none,
// closing is written in its place.
func appendIndented(parent, child *etree.Element, indent, closing string) {
	n := len(parent.Child)
	if n > 0 {
		if cd, ok := parent.Child[n-1].(*etree.CharData); ok && cd.IsWhitespace() {
			parent.InsertChildAt(n-1, etree.NewText(indent))
			parent.InsertChildAt(n, child)
			return
		}
	}
	parent.AddChild(etree.NewText(indent))
	parent.AddChild(child)
	parent.AddChild(etree.NewText(closing))
}

// leadingWhitespace returns the whitespace directly before e in its parent.
func leadingWhitespace(e *etree.Element) (string, bool) {
	parent := e.Parent()
	i := e.Index()
	if parent == nil || i <= 0 {
		return "", false
	}
	cd, ok := parent.Child[i-1].(*etree.CharData)
	if !ok || !cd.IsWhitespace() || !strings.Contains(cd.Data, "\n") {
		return "", false
	}
	return cd.Data, true
}

// indentUnit guesses one indentation level from the first child of project.
func indentUnit(project *etree.Element) string {
	children := project.ChildElements()
	if len(children) == 0 {
		return defaultIndent
	}
	if ws, ok := leadingWhitespace(children[0]); ok {
		if unit := lastLine(ws); unit != "" {
			return unit
		}
	}
	return defaultIndent
}

func lastLine(ws string) string {
	return ws[strings.LastIndex(ws, "\n")+1:]
}
