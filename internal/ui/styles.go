// Package ui renders the foreground timer and the status-bar report.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/pomodoro/internal/domain"
)

// Colors defines the palette for chunk output.
var Colors = struct {
	Pomodoro   lipgloss.Color
	ShortBreak lipgloss.Color
	LongBreak  lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
}{
	Pomodoro:   lipgloss.Color("#D63031"), // Red
	ShortBreak: lipgloss.Color("#00B894"), // Green
	LongBreak:  lipgloss.Color("#74B9FF"), // Light blue
	Muted:      lipgloss.Color("#636E72"), // Gray
	Success:    lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles holds the lipgloss styles bound to one output.
type Styles struct {
	Pomodoro   lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Muted      lipgloss.Style
	Message    lipgloss.Style
}

// NewStyles creates styles for w. Color is dropped automatically when w is
// not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Pomodoro:   r.NewStyle().Bold(true).Foreground(Colors.Pomodoro),
		ShortBreak: r.NewStyle().Bold(true).Foreground(Colors.ShortBreak),
		LongBreak:  r.NewStyle().Bold(true).Foreground(Colors.LongBreak),
		Muted:      r.NewStyle().Foreground(Colors.Muted),
		Message:    r.NewStyle().Bold(true).Foreground(Colors.Success),
	}
}

// ForChunk returns the accent style of a chunk kind.
func (s Styles) ForChunk(kind domain.ChunkKind) lipgloss.Style {
	switch kind {
	case domain.ChunkShortBreak:
		return s.ShortBreak
	case domain.ChunkLongBreak:
		return s.LongBreak
	default:
		return s.Pomodoro
	}
}
