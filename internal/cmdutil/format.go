package cmdutil

import (
	"context"

	"github.com/jvmgen/cli/internal/format"
	"github.com/jvmgen/cli/internal/generator"
	"github.com/jvmgen/cli/internal/output"
)

// SpinnerFormatter shows a spinner while the wrapped formatter runs.
type SpinnerFormatter struct {
	Formatter generator.Formatter
}

// FormatFiles implements generator.Formatter.
func (s SpinnerFormatter) FormatFiles(ctx context.Context, t format.Tree) error {
	return output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return s.Formatter.FormatFiles(ctx, t)
	}, output.WithTitle("Formatting files..."))
}
