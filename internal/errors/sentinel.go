package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates generator options or configuration failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or project was not found.
	ErrNotFound = errors.New("not found")

	// ErrWorkspaceNotFound indicates no nx.json was found above the working directory.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrParentNotFound indicates the parent project or its build file is missing.
	ErrParentNotFound = errors.New("parent project not found")

	// ErrMalformedBuildFile indicates a build file could not be parsed or lacks
	// required coordinates.
	ErrMalformedBuildFile = errors.New("malformed build file")

	// ErrUnsupportedPlugin indicates the workspace build plugin is unknown or ambiguous.
	ErrUnsupportedPlugin = errors.New("unsupported plugin")

	// ErrAggregatorNotFound indicates the aggregator project or its build file is missing.
	ErrAggregatorNotFound = errors.New("aggregator project not found")

	// ErrProjectExists indicates a project with the same name is already registered.
	ErrProjectExists = errors.New("project already exists")
)
