package cli

import (
	"github.com/runoshun/pomodoro/internal/app"
	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/ui"
	"github.com/runoshun/pomodoro/internal/usecase"
	"github.com/spf13/cobra"
)

// NewBarCommand creates the root command for the status-bar plugin.
func NewBarCommand(c *app.Container, version string) *cobra.Command {
	var start, stop, pause bool

	cmd := &cobra.Command{
		Use:   "pomodoro-bar",
		Short: "Pomodoro timer for BitBar, xbar and SwiftBar",
		Long: `Status-bar plugin for the pomodoro timer.

Each run applies at most one action to the saved timer and prints the
menu for the status-bar host. Without a flag the timer is checked and
stopped once the pomodoro is over.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: printConfigWarnings(c),
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ApplyBarActionUseCase().Execute(cmd.Context(), usecase.BarActionInput{
				Action: barAction(start, stop, pause),
			})
			if err != nil {
				return err
			}

			return ui.RenderStatusBar(cmd.OutOrStdout(), ui.BarReport{
				View:       out.View,
				Executable: c.BarExecutable(),
				Remaining:  out.Remaining,
			})
		},
	}

	cmd.Flags().BoolVarP(&start, "start", "s", false, "Start or resume the timer")
	cmd.Flags().BoolVarP(&stop, "stop", "t", false, "Stop the timer")
	cmd.Flags().BoolVarP(&pause, "pause", "p", false, "Pause the timer")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// barAction picks the action from the flags: stop wins over pause, pause over start.
func barAction(start, stop, pause bool) domain.BarAction {
	switch {
	case stop:
		return domain.BarStop
	case pause:
		return domain.BarPause
	case start:
		return domain.BarStart
	default:
		return domain.BarCheck
	}
}
