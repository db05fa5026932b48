package domain

import (
	"context"
	"time"
)

// TimerRepository persists the status-bar timer record between invocations.
// Implementations treat a missing or corrupt record as stopped.
type TimerRepository interface {
	// Load returns the current record.
	Load() (TimerRecord, error)

	// Save replaces the record.
	Save(record TimerRecord) error

	// Clear empties the record, leaving the timer stopped.
	Clear() error
}

// CompletionLog is the append-only history of completed chunks.
type CompletionLog interface {
	// Append adds one record to the end of the log.
	Append(record CompletionRecord) error

	// List returns every record in file order.
	List() ([]CompletionRecord, error)
}

// Notifier delivers desktop notifications.
type Notifier interface {
	// Notify shows a notification. Delivery is best-effort.
	Notify(ctx context.Context, title, message string) error
}

// Prompter asks the user to confirm before a chunk starts.
type Prompter interface {
	// Confirm blocks until the user confirms or ctx is done.
	Confirm(ctx context.Context, message string) error
}

// TimerDisplay renders the foreground timer.
type TimerDisplay interface {
	// ChunkStarted announces a chunk and its scheduled length.
	ChunkStarted(chunk Chunk, at time.Time)

	// Progress draws the bar for one sub-interval.
	Progress(step, steps, percent int)

	// ChunkFinished ends the progress line of a chunk.
	ChunkFinished(chunk Chunk)

	// Summary prints the number of completed pomodoros.
	Summary(completed int)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults + file).
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// GetConfigInfo returns information about the config file.
	GetConfigInfo() ConfigInfo

	// InitConfig creates the config file from the default template.
	InitConfig(cfg *Config) error
}

// ConfigInfo contains information about a configuration file.
type ConfigInfo struct {
	Path    string // Absolute path to the config file
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleeper waits between progress updates.
type Sleeper interface {
	// Sleep waits for d, returning ctx.Err() early if ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper implements Sleeper with a timer.
type RealSleeper struct{}

// Sleep waits for d or until ctx is done.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
