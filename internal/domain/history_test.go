package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompletionRecord_FormatLine(t *testing.T) {
	rec := CompletionRecord{
		At:       time.Date(2024, 1, 1, 10, 25, 0, 0, time.UTC),
		Duration: 1500 * time.Second,
	}
	assert.Equal(t, "\"2024-01-01T10:25:00Z\",1500\n", rec.FormatLine())
}
