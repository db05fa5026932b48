// Package cli provides the command-line interface for the pomodoro timer.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/runoshun/pomodoro/internal/app"
	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for pomodoro.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var timeFlag string

	root := &cobra.Command{
		Use:   "pomodoro",
		Short: "A simple pomodoro timer",
		Long: `A simple pomodoro timer for the terminal.

Runs pomodoros and breaks until interrupted with Ctrl-C. A long break
follows every fourth pomodoro. Press enter to start each pomodoro.`,
		Example: `  pomodoro
  pomodoro --time 50`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors:     true,
		PersistentPreRunE: printConfigWarnings(c),
		RunE: func(cmd *cobra.Command, _ []string) error {
			minutes, err := parseMinutes(timeFlag, cmd.Flags().Changed("time"))
			if err != nil {
				return err
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			_, err = c.RunTimerUseCase().Execute(ctx, usecase.RunTimerInput{PomodoroMinutes: minutes})
			return err
		},
	}

	root.Flags().StringVar(&timeFlag, "time", "", "Length of a single pomodoro in minutes")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newStatsCommand(c),
		newConfigCommand(c),
	)

	return root
}

// printConfigWarnings reports unknown config keys before any command runs.
func printConfigWarnings(c *app.Container) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		// Skip if container is nil (e.g. in tests)
		if c == nil || c.AppConfig == nil {
			return nil
		}
		for _, w := range c.AppConfig.Warnings {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
		return nil
	}
}

// parseMinutes validates the --time value. An unset flag returns 0,
// which selects the configured length.
func parseMinutes(value string, set bool) (int, error) {
	if !set {
		return 0, nil
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTime, value)
	}
	return minutes, nil
}
