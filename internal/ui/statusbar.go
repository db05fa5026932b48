package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
)

// Status-bar protocol tokens (BitBar / xbar / SwiftBar).
const (
	barSeparator = "---"
	runningColor = "red"
	pausedColor  = "orange"
)

// BarReport is everything the status-bar renderer needs.
type BarReport struct {
	View       domain.BarView
	Executable string        // Path the host runs for menu actions
	Remaining  time.Duration // Time left while started
}

// RenderStatusBar writes the line-oriented report consumed by the status-bar host.
// The first line is the menu bar title; lines after the separator are menu entries.
func RenderStatusBar(w io.Writer, r BarReport) error {
	var lines []string
	switch r.View {
	case domain.ViewStarted:
		lines = []string{
			fmt.Sprintf("🍅 %s | color=%s", FormatClock(r.Remaining), runningColor),
			barSeparator,
			actionLine("Pause", r.Executable, domain.BarPause),
			actionLine("Stop", r.Executable, domain.BarStop),
		}
	case domain.ViewPaused:
		lines = []string{
			fmt.Sprintf("⏸ paused | color=%s", pausedColor),
			barSeparator,
			actionLine("Resume", r.Executable, domain.BarStart),
			actionLine("Stop", r.Executable, domain.BarStop),
		}
	default:
		lines = []string{
			"🍅",
			barSeparator,
			actionLine("Start", r.Executable, domain.BarStart),
		}
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// actionLine renders a menu entry that re-invokes the plugin with an action flag.
func actionLine(label, executable string, action domain.BarAction) string {
	return fmt.Sprintf("%s | bash=%s param1=%s terminal=false refresh=true", label, quoteParam(executable), action.Flag())
}

// quoteParam wraps values containing whitespace in double quotes.
func quoteParam(v string) string {
	if strings.ContainsAny(v, " \t") {
		return `"` + v + `"`
	}
	return v
}

// FormatClock renders a duration as MM:SS, rounding up to the next second.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
