package domain

import (
	"bytes"
	_ "embed"
	"runtime"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default lengths in minutes.
const (
	DefaultPomodoroMinutes   = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultLogLevel          = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	Notify   NotifyConfig   `toml:"notify"`
	History  HistoryConfig  `toml:"history"`
	Bar      BarConfig      `toml:"bar"`
	Log      LogConfig      `toml:"log"`
	Pomodoro PomodoroConfig `toml:"pomodoro"`
	Breaks   BreaksConfig   `toml:"breaks"`
}

// PomodoroConfig holds settings from the [pomodoro] section.
type PomodoroConfig struct {
	Minutes int `toml:"minutes"` // Length of a pomodoro
}

// BreaksConfig holds settings from the [breaks] section.
type BreaksConfig struct {
	ShortMinutes int `toml:"short_minutes"`
	LongMinutes  int `toml:"long_minutes"`
}

// NotifyConfig holds settings from the [notify] section.
type NotifyConfig struct {
	Command string `toml:"command"` // Command template; {{.Title}} and {{.Message}} are expanded per argument
	Title   string `toml:"title"`
	Enabled bool   `toml:"enabled"`
}

// HistoryConfig holds settings from the [history] section.
type HistoryConfig struct {
	Path    string `toml:"path,omitempty"` // Empty means the default data directory
	Enabled bool   `toml:"enabled"`
}

// BarConfig holds settings from the [bar] section.
type BarConfig struct {
	StatePath string `toml:"state_path,omitempty"` // Empty means DefaultStatePath
	PluginDir string `toml:"plugin_dir,omitempty"` // Overridden by POMODORO_PLUGIN_DIR
	Minutes   int    `toml:"minutes,omitempty"`    // 0 means pomodoro.minutes
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Pomodoro: PomodoroConfig{Minutes: DefaultPomodoroMinutes},
		Breaks: BreaksConfig{
			ShortMinutes: DefaultShortBreakMinutes,
			LongMinutes:  DefaultLongBreakMinutes,
		},
		Notify: NotifyConfig{
			Enabled: true,
			Title:   NotificationTitle,
			Command: DefaultNotifyCommand(runtime.GOOS),
		},
		History: HistoryConfig{Enabled: true},
		Log:     LogConfig{Level: DefaultLogLevel},
	}
}

// Schedule builds the cycle chunks. A positive pomodoroMinutes overrides
// the configured pomodoro length.
func (c *Config) Schedule(pomodoroMinutes int) (*Schedule, error) {
	if pomodoroMinutes <= 0 {
		pomodoroMinutes = c.Pomodoro.Minutes
	}
	return NewSchedule(pomodoroMinutes, c.Breaks.ShortMinutes, c.Breaks.LongMinutes)
}

// BarMinutes returns the pomodoro length used by the status-bar timer.
func (c *Config) BarMinutes() int {
	if c.Bar.Minutes > 0 {
		return c.Bar.Minutes
	}
	return c.Pomodoro.Minutes
}

// RenderConfigTemplate renders the commented default config file.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
