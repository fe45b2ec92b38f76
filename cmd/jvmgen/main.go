// Package main is the entry point for the jvmgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jvmgen/cli/internal/cmd"
	oerrors "github.com/jvmgen/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Commands that already reported the error set Printed.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag and argument errors from cobra land here.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
