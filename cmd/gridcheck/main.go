// Package main is the entry point for the gridcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/gridcheck/cmd/gridcheck/commands"
	"github.com/thoreinstein/gridcheck/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, exitErr.Suggestion)
		} else if !errors.Is(err, errors.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(errors.ExitCode(err))
	}
}
