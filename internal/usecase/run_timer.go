package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/runoshun/pomodoro/internal/domain"
)

// ConfirmPrompt is shown before a chunk that does not start automatically.
const ConfirmPrompt = "Press enter to continue"

// RunTimerInput contains the parameters for the foreground timer.
type RunTimerInput struct {
	PomodoroMinutes int // Overrides pomodoro.minutes when positive
}

// RunTimerOutput contains the result of a foreground timer run.
type RunTimerOutput struct {
	Completed int // Number of pomodoros finished before the interrupt
}

// RunTimer is the use case for the endless pomodoro / break cycle.
// Fields are ordered to minimize memory padding.
type RunTimer struct {
	display  domain.TimerDisplay
	prompter domain.Prompter
	sleeper  domain.Sleeper
	notifier domain.Notifier
	log      domain.CompletionLog // nil disables the completion log
	clock    domain.Clock
	config   *domain.Config
	logger   *slog.Logger
}

// NewRunTimer creates a new RunTimer use case.
func NewRunTimer(
	config *domain.Config,
	display domain.TimerDisplay,
	prompter domain.Prompter,
	sleeper domain.Sleeper,
	notifier domain.Notifier,
	log domain.CompletionLog,
	clock domain.Clock,
	logger *slog.Logger,
) *RunTimer {
	return &RunTimer{
		config:   config,
		display:  display,
		prompter: prompter,
		sleeper:  sleeper,
		notifier: notifier,
		log:      log,
		clock:    clock,
		logger:   logger,
	}
}

// Execute runs pomodoros and breaks until ctx is cancelled.
// Cancellation is the normal way out: the summary is printed and no error
// is returned.
func (uc *RunTimer) Execute(ctx context.Context, in RunTimerInput) (*RunTimerOutput, error) {
	if in.PomodoroMinutes < 0 {
		return nil, domain.ErrInvalidTime
	}

	schedule, err := uc.config.Schedule(in.PomodoroMinutes)
	if err != nil {
		return nil, err
	}

	completed := 0
	chunk := schedule.Pomodoro
	for {
		if err := uc.runChunk(ctx, chunk); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				uc.display.Summary(completed)
				return &RunTimerOutput{Completed: completed}, nil
			}
			return nil, err
		}

		if chunk.Kind.IsBreak() {
			chunk = schedule.Pomodoro
			continue
		}
		completed++
		chunk = schedule.BreakAfter(completed)
	}
}

// runChunk announces, times and finishes one chunk.
func (uc *RunTimer) runChunk(ctx context.Context, chunk domain.Chunk) error {
	uc.display.ChunkStarted(chunk, uc.clock.Now())

	if !chunk.AutoStart {
		if err := uc.prompter.Confirm(ctx, ConfirmPrompt); err != nil {
			return err
		}
	}

	steps := domain.ProgressSteps
	step := chunk.StepDuration()
	for i := 0; i <= steps; i++ {
		uc.display.Progress(i, steps, domain.ProgressPercent(i, steps))
		if err := uc.sleeper.Sleep(ctx, step); err != nil {
			return err
		}
	}

	uc.display.ChunkFinished(chunk)
	uc.finish(ctx, chunk)
	return nil
}

// finish notifies and records a completed chunk. Failures are logged only.
func (uc *RunTimer) finish(ctx context.Context, chunk domain.Chunk) {
	title := uc.config.Notify.Title
	if title == "" {
		title = domain.NotificationTitle
	}
	if err := uc.notifier.Notify(ctx, title, chunk.Message); err != nil {
		uc.logger.Warn("notification failed", "chunk", chunk.Name, "error", err)
	}

	if !chunk.Loggable || uc.log == nil {
		return
	}
	record := domain.CompletionRecord{At: uc.clock.Now(), Duration: chunk.Duration}
	if err := uc.log.Append(record); err != nil {
		uc.logger.Warn("failed to append completion log", "error", err)
	}
}
