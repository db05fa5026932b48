// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// Ensure MockClock implements domain.Clock interface.
var _ domain.Clock = (*MockClock)(nil)

// MockSleeper is a test double for domain.Sleeper.
// It returns immediately, optionally advancing a MockClock, and calls
// Cancel once CancelAfter sleeps have happened.
type MockSleeper struct {
	Clock       *MockClock
	Cancel      context.CancelFunc
	Calls       []time.Duration
	CancelAfter int
}

// Sleep records the call and returns ctx.Err() if ctx is done.
func (m *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Calls = append(m.Calls, d)
	if m.Clock != nil {
		m.Clock.Advance(d)
	}
	if m.Cancel != nil && m.CancelAfter > 0 && len(m.Calls) >= m.CancelAfter {
		m.Cancel()
		return ctx.Err()
	}
	return nil
}

// Ensure MockSleeper implements domain.Sleeper interface.
var _ domain.Sleeper = (*MockSleeper)(nil)

// Notification is one recorded Notify call.
type Notification struct {
	Title   string
	Message string
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	NotifyErr error
	Sent      []Notification
	mu        sync.Mutex
}

// Notify records the notification and returns NotifyErr.
func (m *MockNotifier) Notify(_ context.Context, title, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, Notification{Title: title, Message: message})
	return m.NotifyErr
}

// Ensure MockNotifier implements domain.Notifier interface.
var _ domain.Notifier = (*MockNotifier)(nil)

// MockPrompter is a test double for domain.Prompter.
type MockPrompter struct {
	ConfirmErr error
	Messages   []string
}

// Confirm records the prompt. It returns ctx.Err() when ctx is done,
// otherwise ConfirmErr.
func (m *MockPrompter) Confirm(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Messages = append(m.Messages, message)
	return m.ConfirmErr
}

// Ensure MockPrompter implements domain.Prompter interface.
var _ domain.Prompter = (*MockPrompter)(nil)

// MockTimerRepository is a test double for domain.TimerRepository.
// Fields are ordered to minimize memory padding.
type MockTimerRepository struct {
	LoadErr    error
	SaveErr    error
	ClearErr   error
	Record     domain.TimerRecord
	SaveCalls  int
	ClearCalls int
}

// NewMockTimerRepository creates a repository holding a stopped record.
func NewMockTimerRepository() *MockTimerRepository {
	return &MockTimerRepository{Record: domain.StoppedRecord()}
}

// Load returns the stored record, or a stopped record with LoadErr.
func (m *MockTimerRepository) Load() (domain.TimerRecord, error) {
	if m.LoadErr != nil {
		return domain.StoppedRecord(), m.LoadErr
	}
	return m.Record, nil
}

// Save stores the record unless SaveErr is set.
func (m *MockTimerRepository) Save(record domain.TimerRecord) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Record = record
	return nil
}

// Clear resets the record to stopped unless ClearErr is set.
func (m *MockTimerRepository) Clear() error {
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Record = domain.StoppedRecord()
	return nil
}

// Ensure MockTimerRepository implements domain.TimerRepository interface.
var _ domain.TimerRepository = (*MockTimerRepository)(nil)

// MockCompletionLog is a test double for domain.CompletionLog.
type MockCompletionLog struct {
	AppendErr error
	ListErr   error
	Records   []domain.CompletionRecord
}

// Append stores the record unless AppendErr is set.
func (m *MockCompletionLog) Append(record domain.CompletionRecord) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Records = append(m.Records, record)
	return nil
}

// List returns the stored records or ListErr.
func (m *MockCompletionLog) List() ([]domain.CompletionRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Records, nil
}

// Ensure MockCompletionLog implements domain.CompletionLog interface.
var _ domain.CompletionLog = (*MockCompletionLog)(nil)

// ProgressCall is one recorded Progress call.
type ProgressCall struct {
	Step    int
	Steps   int
	Percent int
}

// MockDisplay is a test double for domain.TimerDisplay.
type MockDisplay struct {
	Started   []domain.Chunk
	StartedAt []time.Time
	Finished  []domain.Chunk
	Steps     []ProgressCall
	Summaries []int
}

// ChunkStarted records the chunk.
func (m *MockDisplay) ChunkStarted(chunk domain.Chunk, at time.Time) {
	m.Started = append(m.Started, chunk)
	m.StartedAt = append(m.StartedAt, at)
}

// Progress records the call.
func (m *MockDisplay) Progress(step, steps, percent int) {
	m.Steps = append(m.Steps, ProgressCall{Step: step, Steps: steps, Percent: percent})
}

// ChunkFinished records the chunk.
func (m *MockDisplay) ChunkFinished(chunk domain.Chunk) {
	m.Finished = append(m.Finished, chunk)
}

// Summary records the completed count.
func (m *MockDisplay) Summary(completed int) {
	m.Summaries = append(m.Summaries, completed)
}

// Ensure MockDisplay implements domain.TimerDisplay interface.
var _ domain.TimerDisplay = (*MockDisplay)(nil)

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitWith   *domain.Config
	Info       domain.ConfigInfo
	InitCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		Info: domain.ConfigInfo{
			Path:   "/home/test/.config/pomodoro/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetConfigInfo returns the configured config info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call and returns the configured error.
func (m *MockConfigManager) InitConfig(cfg *domain.Config) error {
	m.InitCalled = true
	m.InitWith = cfg
	return m.InitErr
}
