package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
)

// BarActionInput contains the parameters for one status-bar invocation.
type BarActionInput struct {
	Action domain.BarAction // Empty means check
}

// BarActionOutput contains the state to report to the status bar.
type BarActionOutput struct {
	Record    domain.TimerRecord // Record after the action
	View      domain.BarView
	Remaining time.Duration // Time left while started
}

// ApplyBarAction is the use case for the status-poll timer. It loads the
// persisted record, applies one action and computes the view.
// Fields are ordered to minimize memory padding.
type ApplyBarAction struct {
	timers   domain.TimerRepository
	notifier domain.Notifier
	clock    domain.Clock
	logger   *slog.Logger
	title    string
	duration time.Duration
}

// NewApplyBarAction creates a new ApplyBarAction use case.
// duration is the pomodoro length; title is used for the expiry notification.
func NewApplyBarAction(
	timers domain.TimerRepository,
	notifier domain.Notifier,
	clock domain.Clock,
	logger *slog.Logger,
	duration time.Duration,
	title string,
) *ApplyBarAction {
	return &ApplyBarAction{
		timers:   timers,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		duration: duration,
		title:    title,
	}
}

// Execute applies the action and saves the resulting record.
func (uc *ApplyBarAction) Execute(ctx context.Context, in BarActionInput) (*BarActionOutput, error) {
	action := in.Action
	if action == "" {
		action = domain.BarCheck
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAction, action)
	}

	record, err := uc.timers.Load()
	if err != nil {
		uc.logger.Warn("failed to load timer record, treating as stopped", "error", err)
		record = domain.StoppedRecord()
	}
	now := uc.clock.Now()

	switch action {
	case domain.BarStart:
		if !record.IsRunning() {
			record = domain.TimerRecord{StartTime: now, Status: domain.TimerRunning}
			if err := uc.timers.Save(record); err != nil {
				return nil, fmt.Errorf("save timer: %w", err)
			}
		}
		return uc.started(record, now), nil

	case domain.BarPause:
		record = domain.TimerRecord{StartTime: now, Status: domain.TimerPaused}
		if err := uc.timers.Save(record); err != nil {
			return nil, fmt.Errorf("save timer: %w", err)
		}
		return &BarActionOutput{Record: record, View: domain.ViewPaused}, nil

	case domain.BarStop:
		return uc.stop()

	default:
		if !record.IsRunning() {
			return &BarActionOutput{Record: record, View: domain.ViewEnded}, nil
		}
		if !record.Expired(now, uc.duration) {
			return uc.started(record, now), nil
		}
		out, err := uc.stop()
		if err != nil {
			return nil, err
		}
		if err := uc.notifier.Notify(ctx, uc.title, domain.PomodoroMessage); err != nil {
			uc.logger.Warn("notification failed", "error", err)
		}
		return out, nil
	}
}

func (uc *ApplyBarAction) started(record domain.TimerRecord, now time.Time) *BarActionOutput {
	return &BarActionOutput{
		Record:    record,
		View:      domain.ViewStarted,
		Remaining: record.Remaining(now, uc.duration),
	}
}

func (uc *ApplyBarAction) stop() (*BarActionOutput, error) {
	if err := uc.timers.Clear(); err != nil {
		return nil, fmt.Errorf("clear timer: %w", err)
	}
	return &BarActionOutput{Record: domain.StoppedRecord(), View: domain.ViewEnded}, nil
}
