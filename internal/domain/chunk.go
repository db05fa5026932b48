package domain

import (
	"fmt"
	"time"
)

// ChunkKind identifies which interval of the cycle a chunk represents.
type ChunkKind string

const (
	ChunkPomodoro   ChunkKind = "pomodoro"    // Focused work interval
	ChunkShortBreak ChunkKind = "short_break" // Break after most pomodoros
	ChunkLongBreak  ChunkKind = "long_break"  // Break after every LongBreakEvery pomodoros
)

// IsBreak returns true for both break kinds.
func (k ChunkKind) IsBreak() bool {
	return k == ChunkShortBreak || k == ChunkLongBreak
}

// Default chunk texts.
const (
	PomodoroName      = "Pomodoro"
	ShortBreakName    = "Short break"
	LongBreakName     = "Long break"
	PomodoroMessage   = "Pomodoro Time is up!"
	BreakMessage      = "Pomodoro Break is up!"
	NotificationTitle = "Pomodoro"
	ProgressSteps     = 20 // Sub-intervals per chunk
)

// Chunk is one timed interval of the cycle.
// Fields are ordered to minimize memory padding.
type Chunk struct {
	Kind      ChunkKind
	Name      string
	Message   string        // Shown and notified on completion
	Duration  time.Duration // Always a positive whole number of seconds
	AutoStart bool          // Start without waiting for confirmation
	Loggable  bool          // Append to the completion log when finished
}

// Validate checks the chunk invariants.
func (c Chunk) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: %s has duration %s", ErrInvalidDuration, c.Name, c.Duration)
	}
	if c.Duration%time.Second != 0 {
		return fmt.Errorf("%w: %s duration %s is not whole seconds", ErrInvalidDuration, c.Name, c.Duration)
	}
	return nil
}

// Seconds returns the duration in whole seconds.
func (c Chunk) Seconds() int {
	return int(c.Duration / time.Second)
}

// StepDuration returns the length of one progress sub-interval.
func (c Chunk) StepDuration() time.Duration {
	return c.Duration / ProgressSteps
}

// ProgressPercent returns round(step/steps*100).
func ProgressPercent(step, steps int) int {
	if steps <= 0 {
		return 100
	}
	if step <= 0 {
		return 0
	}
	if step >= steps {
		return 100
	}
	return (step*100 + steps/2) / steps
}
