package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
)

// ShowStatsInput contains the input for the ShowStats use case.
type ShowStatsInput struct{}

// ShowStatsOutput summarizes the completion log.
type ShowStatsOutput struct {
	First *time.Time // Earliest completion, nil when the log is empty
	Last  *time.Time // Latest completion, nil when the log is empty
	Total int
	Today int           // Completions on the clock's current local date
	Focus time.Duration // Sum of completed durations
}

// ShowStats reports totals from the completion log.
type ShowStats struct {
	log   domain.CompletionLog
	clock domain.Clock
}

// NewShowStats creates a new ShowStats use case.
func NewShowStats(log domain.CompletionLog, clock domain.Clock) *ShowStats {
	return &ShowStats{
		log:   log,
		clock: clock,
	}
}

// Execute reads the log and computes the summary.
func (uc *ShowStats) Execute(_ context.Context, _ ShowStatsInput) (*ShowStatsOutput, error) {
	records, err := uc.log.List()
	if err != nil {
		return nil, fmt.Errorf("read completion log: %w", err)
	}

	out := &ShowStatsOutput{}
	today := dateOf(uc.clock.Now())
	for _, r := range records {
		out.Total++
		out.Focus += r.Duration
		if dateOf(r.At) == today {
			out.Today++
		}
		at := r.At
		if out.First == nil || at.Before(*out.First) {
			out.First = &at
		}
		if out.Last == nil || at.After(*out.Last) {
			out.Last = &at
		}
	}
	return out, nil
}

func dateOf(t time.Time) string {
	return t.Local().Format(time.DateOnly)
}
