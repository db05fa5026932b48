// Package main is the entry point for the pomodoro CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/pomodoro/internal/app"
	"github.com/runoshun/pomodoro/internal/cli"
	"github.com/runoshun/pomodoro/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

func run() error {
	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// errorMessage returns the text printed for err.
func errorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidTime) {
		return "Invalid time specified."
	}
	return err.Error()
}
