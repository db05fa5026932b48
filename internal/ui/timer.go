package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
	"golang.org/x/term"
)

// Ensure Display implements domain.TimerDisplay interface.
var _ domain.TimerDisplay = (*Display)(nil)

// Display draws the foreground timer. On a terminal the progress bar is
// redrawn in place with a carriage return; otherwise each update is a line.
type Display struct {
	out    io.Writer
	styles Styles
	mu     sync.Mutex
	kind   domain.ChunkKind
	isTTY  bool
}

// NewDisplay creates a Display writing to out.
func NewDisplay(out io.Writer) *Display {
	return &Display{
		out:    out,
		styles: NewStyles(out),
		isTTY:  isTerminal(out),
	}
}

// ChunkStarted prints the chunk name and its scheduled start and length.
//
//	Pomodoro!
//	started: 09:30 (duration: 25m)
func (d *Display) ChunkStarted(chunk domain.Chunk, at time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.kind = chunk.Kind
	header := d.styles.ForChunk(chunk.Kind).Render(chunk.Name + "!")
	started := d.styles.Muted.Render(fmt.Sprintf("started: %s (duration: %s)", at.Format("15:04"), FormatMinutes(chunk.Duration)))
	_, _ = fmt.Fprintf(d.out, "\n%s\n%s\n", header, started)
}

// Progress draws the bar for one sub-interval.
func (d *Display) Progress(step, steps, percent int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isTTY {
		_, _ = fmt.Fprintln(d.out, ProgressBar(step, steps, percent))
		return
	}
	_, _ = fmt.Fprint(d.out, renderBar(step, steps, percent, d.styles.ForChunk(d.kind).Render)+"\r")
}

// ChunkFinished moves past the progress line and shows the completion message.
func (d *Display) ChunkFinished(chunk domain.Chunk) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.isTTY {
		_, _ = fmt.Fprintln(d.out)
	}
	_, _ = fmt.Fprintln(d.out, d.styles.Message.Render(chunk.Message))
}

// Summary prints the number of completed pomodoros.
func (d *Display) Summary(completed int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, _ = fmt.Fprintf(d.out, "\nYou've completed %d full pomodoros.\n", completed)
}

// ProgressBar renders `|` + "==" per filled step + "  " per empty step + `| NN%`.
func ProgressBar(step, steps, percent int) string {
	return renderBar(step, steps, percent, nil)
}

func renderBar(step, steps, percent int, paint func(...string) string) string {
	step = clamp(step, 0, steps)
	filled := strings.Repeat("==", step)
	if paint != nil && filled != "" {
		filled = paint(filled)
	}
	return "|" + filled + strings.Repeat("  ", steps-step) + fmt.Sprintf("| %d%%", percent)
}

// FormatMinutes renders a duration as whole minutes ("25m"), or seconds
// when shorter than a minute.
func FormatMinutes(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return fmt.Sprintf("%dm", int(d/time.Minute))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
