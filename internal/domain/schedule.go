package domain

import "time"

// LongBreakEvery is the number of completed pomodoros between long breaks.
const LongBreakEvery = 4

// Schedule holds the three chunks of a pomodoro cycle.
type Schedule struct {
	Pomodoro   Chunk
	ShortBreak Chunk
	LongBreak  Chunk
}

// NewSchedule builds the cycle chunks from minute lengths and validates them.
func NewSchedule(pomodoroMinutes, shortMinutes, longMinutes int) (*Schedule, error) {
	s := &Schedule{
		Pomodoro: Chunk{
			Kind:      ChunkPomodoro,
			Name:      PomodoroName,
			Duration:  time.Duration(pomodoroMinutes) * time.Minute,
			Message:   PomodoroMessage,
			AutoStart: false,
			Loggable:  true,
		},
		ShortBreak: Chunk{
			Kind:      ChunkShortBreak,
			Name:      ShortBreakName,
			Duration:  time.Duration(shortMinutes) * time.Minute,
			Message:   BreakMessage,
			AutoStart: true,
		},
		LongBreak: Chunk{
			Kind:      ChunkLongBreak,
			Name:      LongBreakName,
			Duration:  time.Duration(longMinutes) * time.Minute,
			Message:   BreakMessage,
			AutoStart: true,
		},
	}
	for _, c := range []Chunk{s.Pomodoro, s.ShortBreak, s.LongBreak} {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// IsLongBreakDue reports whether the break following the given number of
// completed pomodoros is a long one.
func IsLongBreakDue(completed int) bool {
	return completed > 0 && completed%LongBreakEvery == 0
}

// BreakAfter returns the break chunk to run after completed pomodoros.
func (s *Schedule) BreakAfter(completed int) Chunk {
	if IsLongBreakDue(completed) {
		return s.LongBreak
	}
	return s.ShortBreak
}
