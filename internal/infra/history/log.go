// Package history provides the append-only completion log.
// Each line is `"<RFC3339 timestamp>",<seconds>`.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
)

// Ensure Log implements domain.CompletionLog interface.
var _ domain.CompletionLog = (*Log)(nil)

// Log appends completion records to a text file. It never rotates or truncates.
type Log struct {
	path string
	mu   sync.Mutex
}

// New creates a Log writing to path. The file is created on first append.
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Append writes one record at the end of the file.
func (l *Log) Append(record domain.CompletionRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // History readable by owner and group
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.WriteString(f, record.FormatLine()); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// List reads every record. A missing file yields no records.
func (l *Log) List() ([]domain.CompletionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var records []domain.CompletionRecord
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return records, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("read history: %w", err)
	}
	return records, nil
}

// ParseLine parses one `"<timestamp>",<seconds>` line.
func ParseLine(line string) (domain.CompletionRecord, error) {
	idx := strings.LastIndex(line, ",")
	if idx < 0 {
		return domain.CompletionRecord{}, fmt.Errorf("%w: %q", domain.ErrMalformedLog, line)
	}

	stamp, err := strconv.Unquote(strings.TrimSpace(line[:idx]))
	if err != nil {
		return domain.CompletionRecord{}, fmt.Errorf("%w: %q", domain.ErrMalformedLog, line)
	}
	at, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return domain.CompletionRecord{}, fmt.Errorf("%w: %q", domain.ErrMalformedLog, line)
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(line[idx+1:]))
	if err != nil || seconds < 0 {
		return domain.CompletionRecord{}, fmt.Errorf("%w: %q", domain.ErrMalformedLog, line)
	}

	return domain.CompletionRecord{At: at, Duration: time.Duration(seconds) * time.Second}, nil
}
