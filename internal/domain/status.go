package domain

import (
	"strings"
	"time"
)

// TimerStatus represents the lifecycle state of the persisted status-bar timer.
type TimerStatus string

const (
	TimerStopped TimerStatus = "stopped" // No record on disk
	TimerRunning TimerStatus = "running" // Pomodoro in progress since StartTime
	TimerPaused  TimerStatus = "paused"  // Paused at StartTime
)

// IsValid returns true if the status is a known value.
func (s TimerStatus) IsValid() bool {
	switch s {
	case TimerStopped, TimerRunning, TimerPaused:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s TimerStatus) Display() string {
	switch s {
	case TimerRunning:
		return "Running"
	case TimerPaused:
		return "Paused"
	case TimerStopped:
		return "Stopped"
	default:
		return string(s)
	}
}

// TimerRecord is the single-line state handed between status-bar invocations.
// The zero value is a stopped timer.
type TimerRecord struct {
	StartTime time.Time
	Status    TimerStatus
}

// StoppedRecord returns the empty record.
func StoppedRecord() TimerRecord {
	return TimerRecord{Status: TimerStopped}
}

// ParseTimerRecord parses "startTime,status".
// Empty or unparseable content yields a stopped record.
func ParseTimerRecord(line string) TimerRecord {
	line = strings.TrimSpace(line)
	if line == "" {
		return StoppedRecord()
	}

	startStr, statusStr, ok := strings.Cut(line, ",")
	if !ok {
		return StoppedRecord()
	}

	status := TimerStatus(strings.TrimSpace(statusStr))
	if status != TimerRunning && status != TimerPaused {
		return StoppedRecord()
	}

	start, err := time.Parse(time.RFC3339, strings.TrimSpace(startStr))
	if err != nil {
		return StoppedRecord()
	}

	return TimerRecord{StartTime: start, Status: status}
}

// String formats the record as its on-disk line (without newline).
// A stopped record formats as the empty string.
func (r TimerRecord) String() string {
	if r.IsStopped() {
		return ""
	}
	return r.StartTime.Format(time.RFC3339) + "," + string(r.Status)
}

// IsStopped returns true if the record represents no active timer.
func (r TimerRecord) IsStopped() bool {
	return r.Status == "" || r.Status == TimerStopped
}

// IsRunning returns true while a pomodoro is counting down.
func (r TimerRecord) IsRunning() bool {
	return r.Status == TimerRunning
}

// EndTime returns the moment a running pomodoro of length d ends.
func (r TimerRecord) EndTime(d time.Duration) time.Time {
	return r.StartTime.Add(d)
}

// Expired reports whether now is strictly after StartTime + d.
func (r TimerRecord) Expired(now time.Time, d time.Duration) bool {
	return now.After(r.EndTime(d))
}

// Remaining returns the time left until EndTime, never negative.
func (r TimerRecord) Remaining(now time.Time, d time.Duration) time.Duration {
	left := r.EndTime(d).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
