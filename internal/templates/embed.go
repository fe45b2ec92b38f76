// Package templates provides the embedded project templates and renders them
// into a workspace tree.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:files
var filesFS embed.FS

// FS returns the embedded template sets rooted at the set names.
func FS() fs.FS {
	sub, err := fs.Sub(filesFS, "files")
	if err != nil {
		panic(err)
	}
	return sub
}
