// Package statefile provides a single-line file implementation of TimerRepository.
package statefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/pomodoro/internal/domain"
)

// Ensure Store implements domain.TimerRepository.
var _ domain.TimerRepository = (*Store)(nil)

// Store keeps the status-bar timer record in one flat file.
// There is no locking: concurrent writers race and the last one wins.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the record file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the record. A missing, empty or corrupt file is a stopped timer.
func (s *Store) Load() (domain.TimerRecord, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.StoppedRecord(), nil
		}
		return domain.StoppedRecord(), fmt.Errorf("read state file: %w", err)
	}
	return domain.ParseTimerRecord(string(content)), nil
}

// Save replaces the record. Saving a stopped record clears the file.
func (s *Store) Save(record domain.TimerRecord) error {
	if record.IsStopped() {
		return s.Clear()
	}
	return s.write([]byte(record.String() + "\n"))
}

// Clear truncates the record file to empty, creating it if needed.
func (s *Store) Clear() error {
	return s.write(nil)
}

func (s *Store) write(content []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
