// Package maven reads and edits Maven project descriptors (pom.xml).
package maven

import (
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"

	oerrors "github.com/jvmgen/cli/internal/errors"
)

// PomFile is the Maven project descriptor name.
const PomFile = "pom.xml"

// Reader reads workspace files.
type Reader interface {
	Read(path string) ([]byte, error)
}

// ReadWriter reads and stages workspace files.
type ReadWriter interface {
	Reader
	Write(path string, content []byte) error
}

// PomPath returns the pom.xml location for a project root.
func PomPath(root string) string {
	return path.Join(strings.Trim(root, "/"), PomFile)
}

// parsePom parses data as a Maven descriptor rooted at <project>.
func parsePom(data []byte, location string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, oerrors.NewMalformedBuildFileError(fmt.Sprintf("cannot parse XML: %v", err), location, "")
	}

	root := doc.Root()
	if root == nil || root.Tag != "project" {
		return nil, oerrors.NewMalformedBuildFileError("root element must be <project>", location, "project")
	}
	return doc, nil
}

// childText returns the trimmed text of the named direct child of e.
func childText(e *etree.Element, tag string) string {
	if c := e.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

// Coordinates are the identifying fields of a pom.
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// ReadCoordinates extracts a project's coordinates, inheriting groupId and
// version from its <parent> when they are not declared.
func ReadCoordinates(data []byte, location string) (Coordinates, error) {
	doc, err := parsePom(data, location)
	if err != nil {
		return Coordinates{}, err
	}
	project := doc.Root()

	c := Coordinates{
		GroupID:    childText(project, "groupId"),
		ArtifactID: childText(project, "artifactId"),
		Version:    childText(project, "version"),
	}
	if parent := project.SelectElement("parent"); parent != nil {
		if c.GroupID == "" {
			c.GroupID = childText(parent, "groupId")
		}
		if c.Version == "" {
			c.Version = childText(parent, "version")
		}
	}

	switch {
	case c.ArtifactID == "":
		return c, oerrors.NewMalformedBuildFileError("project has no artifactId", location, "artifactId")
	case c.GroupID == "":
		return c, oerrors.NewMalformedBuildFileError("project has no groupId", location, "groupId")
	case c.Version == "":
		return c, oerrors.NewMalformedBuildFileError("project has no version", location, "version")
	}
	return c, nil
}
