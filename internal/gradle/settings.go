// Package gradle edits Gradle settings scripts to register subprojects.
package gradle

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/naming"
	"github.com/jvmgen/cli/internal/output"
)

// Settings script names, in lookup order.
const (
	KotlinSettingsFile = "settings.gradle.kts"
	GroovySettingsFile = "settings.gradle"
)

// Reader reads workspace files.
type Reader interface {
	Read(path string) ([]byte, error)
}

// ReadWriter reads and stages workspace files.
type ReadWriter interface {
	Reader
	Write(path string, content []byte) error
}

var (
	includeStart = regexp.MustCompile(`(?m)^[ \t]*include(?:[ \t]*\(|[ \t]+)`)
	quotedString = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
)

// includeStatement is the span of one include call in a settings script.
// Args ends after the closing parenthesis or the last continued argument line;
// Line ends at the newline closing the statement.
type includeStatement struct {
	Start, Args, Line int
}

// findIncludes returns every include statement of a settings script. The
// Kotlin form runs to its balanced closing parenthesis, the Groovy form to the
// first line not ending in a comma.
func findIncludes(content string) []includeStatement {
	var found []includeStatement
	for _, loc := range includeStart.FindAllStringIndex(content, -1) {
		if len(found) > 0 && loc[0] < found[len(found)-1].Line {
			continue
		}

		var args int
		if content[loc[1]-1] == '(' {
			args = closingParen(content, loc[1])
		} else {
			args = lineEnd(content, loc[1])
			for args < len(content) && strings.HasSuffix(strings.TrimRight(content[loc[0]:args], " \t\r"), ",") {
				args = lineEnd(content, args+1)
			}
		}
		found = append(found, includeStatement{Start: loc[0], Args: args, Line: lineEnd(content, args)})
	}
	return found
}

// closingParen returns the index after the parenthesis closing the one open
// before i, skipping quoted strings. Unbalanced input runs to the end.
func closingParen(content string, i int) int {
	depth := 1
	for ; i < len(content); i++ {
		switch c := content[i]; c {
		case '"', '\'':
			for i++; i < len(content) && content[i] != c; i++ {
				if content[i] == '\\' {
					i++
				}
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(content)
}

// lineEnd returns the index of the newline at or after i, or len(content).
func lineEnd(content string, i int) int {
	if i >= len(content) {
		return len(content)
	}
	if n := strings.IndexByte(content[i:], '\n'); n >= 0 {
		return i + n
	}
	return len(content)
}

// ProjectPath converts a slash path into a Gradle project path ("apps/my-app"
// gives "apps:my-app").
func ProjectPath(rel string) string {
	return strings.ReplaceAll(strings.Trim(rel, "/"), "/", ":")
}

// SettingsPath returns the settings script present at root, preferring the
// Kotlin DSL.
func SettingsPath(r Reader, root string) (string, []byte, error) {
	for _, name := range []string{KotlinSettingsFile, GroovySettingsFile} {
		p := path.Join(strings.Trim(root, "/"), name)
		data, err := r.Read(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, oerrors.ErrNotFound) {
			return "", nil, err
		}
	}
	return "", nil, oerrors.NewAggregatorNotFoundError(
		fmt.Sprintf("no %s or %s found", KotlinSettingsFile, GroovySettingsFile),
		path.Join(strings.Trim(root, "/"), KotlinSettingsFile),
		"Create the Gradle root project first or pass --aggregator-project.")
}

// AddInclude registers projectRoot in the settings script at aggregatorRoot. It
// reports whether the script changed; an existing include of the same project
// leaves it untouched.
func AddInclude(rw ReadWriter, aggregatorRoot, projectRoot string) (bool, error) {
	settings, data, err := SettingsPath(rw, aggregatorRoot)
	if err != nil {
		return false, err
	}

	rel := naming.RelativePath(aggregatorRoot, projectRoot)
	if rel == "." || strings.HasPrefix(rel, "../") {
		return false, oerrors.NewValidationError(
			fmt.Sprintf("project %s is not below the Gradle root", projectRoot), settings, "aggregatorProject", "")
	}
	projectPath := ProjectPath(rel)

	content := string(data)
	includes := findIncludes(content)
	for _, inc := range includes {
		for _, m := range quotedString.FindAllStringSubmatch(content[inc.Start:inc.Args], -1) {
			included := m[1] + m[2]
			if strings.TrimPrefix(included, ":") == projectPath {
				output.Debug("project already included", "settings", settings, "project", projectPath)
				return false, nil
			}
		}
	}

	quote := `"`
	if path.Base(settings) == GroovySettingsFile {
		quote = "'"
	}
	statement := "include(" + quote + projectPath + quote + ")"

	var updated string
	if len(includes) > 0 {
		end := includes[len(includes)-1].Line
		updated = content[:end] + "\n" + statement + content[end:]
	} else {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		updated = content + statement + "\n"
	}

	if err := rw.Write(settings, []byte(updated)); err != nil {
		return false, err
	}
	output.Debug("included project", "settings", settings, "project", projectPath)
	return true, nil
}
