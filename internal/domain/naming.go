package domain

import "path/filepath"

// File and directory names.
const (
	AppName          = "pomodoro"
	ConfigFileName   = "config.toml"
	HistoryFileName  = "pomodoros.log"
	DefaultStatePath = "/tmp/bitbar_pomodoro.txt" // Shared by every status-bar invocation
	ConfigPathEnv    = "POMODORO_CONFIG"
	PluginDirEnv     = "POMODORO_PLUGIN_DIR"
	defaultNotifyCmd = "notify-send {{.Title}} {{.Message}}"
	darwinNotifyCmd  = "terminal-notifier -title {{.Title}} -message {{.Message}}"
)

// GlobalConfigDir returns the pomodoro directory under a config home
// (e.g. ~/.config/pomodoro).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// HistoryPath returns the completion log path under a data home
// (e.g. ~/.local/share/pomodoro/pomodoros.log).
func HistoryPath(dataHome string) string {
	return filepath.Join(dataHome, AppName, HistoryFileName)
}

// DefaultNotifyCommand returns the notifier command template for an OS.
func DefaultNotifyCommand(goos string) string {
	if goos == "darwin" {
		return darwinNotifyCmd
	}
	return defaultNotifyCmd
}
