package templates

// TemplateSet is a directory of templates rendered together into a project root.
type TemplateSet struct {
	// Name is the set's path below files/ (e.g. "application/maven").
	Name string

	// Description explains what the set produces.
	Description string
}

// Writer stages rendered files.
type Writer interface {
	Write(path string, content []byte) error
}
