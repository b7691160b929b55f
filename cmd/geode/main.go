// Package main is the entry point for the geode CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/geode-sdk/geode-cli/cmd/geode/commands"
	geodeerrors "github.com/geode-sdk/geode-cli/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	// Typed errors carry their exit code and an optional suggestion;
	// deciding to terminate happens here and nowhere deeper.
	var exitErr *geodeerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(geodeerrors.ExitUser)
}
