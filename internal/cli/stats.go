package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/runoshun/pomodoro/internal/app"
	"github.com/runoshun/pomodoro/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// statsReport is the yaml shape of the stats output.
type statsReport struct {
	First        string `yaml:"first,omitempty"`
	Last         string `yaml:"last,omitempty"`
	Total        int    `yaml:"total"`
	Today        int    `yaml:"today"`
	FocusMinutes int    `yaml:"focus_minutes"`
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completed pomodoros",
		Long:  `Summarize the completion log: total and today's pomodoros, focused time, and the first and last completion.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want text or yaml)", format)
			}

			out, err := c.ShowStatsUseCase().Execute(cmd.Context(), usecase.ShowStatsInput{})
			if err != nil {
				return err
			}

			if format == "yaml" {
				return writeStatsYAML(cmd.OutOrStdout(), out)
			}
			writeStatsText(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or yaml")

	return cmd
}

func writeStatsText(w io.Writer, out *usecase.ShowStatsOutput) {
	_, _ = fmt.Fprintf(w, "Completed pomodoros: %d\n", out.Total)
	_, _ = fmt.Fprintf(w, "Today:               %d\n", out.Today)
	_, _ = fmt.Fprintf(w, "Focused time:        %s\n", formatFocus(out.Focus))
	if out.First != nil {
		_, _ = fmt.Fprintf(w, "First:               %s\n", out.First.Local().Format("2006-01-02 15:04"))
		_, _ = fmt.Fprintf(w, "Last:                %s\n", out.Last.Local().Format("2006-01-02 15:04"))
	}
}

func writeStatsYAML(w io.Writer, out *usecase.ShowStatsOutput) error {
	report := statsReport{
		Total:        out.Total,
		Today:        out.Today,
		FocusMinutes: int(out.Focus / time.Minute),
	}
	if out.First != nil {
		report.First = out.First.Format(time.RFC3339)
		report.Last = out.Last.Format(time.RFC3339)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	return enc.Close()
}

// formatFocus renders hours and minutes, e.g. "2h05m".
func formatFocus(d time.Duration) string {
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
