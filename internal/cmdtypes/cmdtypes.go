// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/generate, internal/cmd/config).
package cmdtypes

import (
	"github.com/jvmgen/cli/internal/config"
	oerrors "github.com/jvmgen/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Loader holds the loaded config file and resolves per-command values.
	Loader *config.Loader

	// Config is the effective configuration (file, env and defaults merged).
	Config *config.Config

	ConfigPath    string // resolved --config path
	WorkspaceFlag string // raw --workspace flag value
	Verbose       bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitNotFound          = oerrors.ExitNotFound
	ExitUnsupportedPlugin = oerrors.ExitUnsupportedPlugin
	ExitProjectExists     = oerrors.ExitProjectExists
	ExitMalformedBuild    = oerrors.ExitMalformedBuild
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
