package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 25, cfg.Pomodoro.Minutes)
	assert.Equal(t, 5, cfg.Breaks.ShortMinutes)
	assert.Equal(t, 15, cfg.Breaks.LongMinutes)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, NotificationTitle, cfg.Notify.Title)
	assert.NotEmpty(t, cfg.Notify.Command)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfig_Schedule_Override(t *testing.T) {
	cfg := NewDefaultConfig()

	s, err := cfg.Schedule(0)
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, s.Pomodoro.Duration)

	s, err = cfg.Schedule(10)
	require.NoError(t, err)
	assert.Equal(t, 600*time.Second, s.Pomodoro.Duration)
}

func TestConfig_BarMinutes(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, 25, cfg.BarMinutes())

	cfg.Bar.Minutes = 5
	assert.Equal(t, 5, cfg.BarMinutes())
}

func TestDefaultNotifyCommand(t *testing.T) {
	assert.True(t, strings.HasPrefix(DefaultNotifyCommand("darwin"), "terminal-notifier"))
	assert.True(t, strings.HasPrefix(DefaultNotifyCommand("linux"), "notify-send"))
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Pomodoro.Minutes = 30

	content := RenderConfigTemplate(cfg)
	assert.Contains(t, content, "minutes = 30")
	assert.Contains(t, content, "{{.Title}}")

	parsed := NewDefaultConfig()
	require.NoError(t, toml.Unmarshal([]byte(content), parsed))
	assert.Equal(t, 30, parsed.Pomodoro.Minutes)
	assert.Equal(t, cfg.Notify.Command, parsed.Notify.Command)
}
