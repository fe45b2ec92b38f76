package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	oerrors "github.com/jvmgen/cli/internal/errors"
	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/workspace"
)

// ReportError prints err and returns it as an ExitError carrying its exit code.
// DetailErrors are printed as-is; other errors go through the logger.
func ReportError(msg string, err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		fmt.Fprint(os.Stderr, detail.Error())
	} else {
		output.Error(msg, "error", err)
	}

	return &oerrors.ExitError{Err: err, Code: oerrors.ExitCodeFromError(err), Printed: true}
}

// PrintChanges prints one color-coded line per staged change, sorted by path.
// With showDiff, updated files are followed by an indented unified diff.
func PrintChanges(changes []workspace.FileChange, showDiff bool) {
	sorted := make([]workspace.FileChange, len(changes))
	copy(sorted, changes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	for _, c := range sorted {
		output.Println(output.FormatChangeLine(string(c.Type), c.Path))
		if showDiff && c.Type == workspace.ChangeUpdate {
			diff := output.RenderTextDiff(string(c.Before), string(c.Content))
			if diff != "" {
				output.Println(output.IndentDiff(diff, "    "))
			}
		}
	}
}

var fileDescriptions = map[string]string{
	"pom.xml":          "Maven build",
	"build.gradle.kts": "Gradle build",
	"project.json":     "Nx project",
}

// PrintProjectTree prints the created files of a project as a tree rooted at
// the project root.
func PrintProjectTree(projectRoot string, changes []workspace.FileChange) {
	files := make(map[string]string)
	prefix := projectRoot + "/"
	for _, c := range changes {
		if c.Type != workspace.ChangeCreate || !strings.HasPrefix(c.Path, prefix) {
			continue
		}
		files[strings.TrimPrefix(c.Path, prefix)] = fileDescriptions[path.Base(c.Path)]
	}

	if tree := output.RenderFileTree(projectRoot, files); tree != "" {
		output.Print(tree)
	}
}
