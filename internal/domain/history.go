package domain

import (
	"fmt"
	"time"
)

// CompletionRecord is one line of the completion log.
type CompletionRecord struct {
	At       time.Time
	Duration time.Duration
}

// FormatLine renders the record as `"<timestamp>",<seconds>` followed by a newline.
func (r CompletionRecord) FormatLine() string {
	return fmt.Sprintf("%q,%d\n", r.At.Format(time.RFC3339), int(r.Duration/time.Second))
}
