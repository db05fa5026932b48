package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatsCommand_Text(t *testing.T) {
	env := newTestEnv(t)
	env.log.Records = []domain.CompletionRecord{
		{At: testNow.Add(-time.Hour), Duration: 25 * time.Minute},
		{At: testNow.Add(-30 * time.Minute), Duration: 25 * time.Minute},
	}

	cmd := newStatsCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	output := buf.String()
	assert.Contains(t, output, "Completed pomodoros: 2")
	assert.Contains(t, output, "Focused time:        0h50m")
	assert.Contains(t, output, "First:")
	assert.Contains(t, output, "Last:")
}

func TestStatsCommand_EmptyLog(t *testing.T) {
	env := newTestEnv(t)

	cmd := newStatsCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Completed pomodoros: 0")
	assert.NotContains(t, buf.String(), "First:")
}

func TestStatsCommand_YAML(t *testing.T) {
	env := newTestEnv(t)
	env.log.Records = []domain.CompletionRecord{
		{At: testNow.Add(-time.Hour), Duration: 25 * time.Minute},
	}

	cmd := newStatsCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, cmd.Execute())

	var report map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 1, report["total"])
	assert.Equal(t, 25, report["focus_minutes"])
	assert.Equal(t, "2024-03-01T09:00:00Z", report["first"])
}

func TestStatsCommand_UnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)

	cmd := newStatsCommand(env.container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestFormatFocus(t *testing.T) {
	assert.Equal(t, "0h00m", formatFocus(0))
	assert.Equal(t, "2h05m", formatFocus(125*time.Minute))
}
