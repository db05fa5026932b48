package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/pomodoro/internal/domain"
)

// DefaultConfigPath returns the config file location.
// POMODORO_CONFIG wins, then $XDG_CONFIG_HOME/pomodoro, then ~/.config/pomodoro.
func DefaultConfigPath() string {
	if p := os.Getenv(domain.ConfigPathEnv); p != "" {
		return expandHome(p)
	}
	dir := defaultGlobalConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, domain.ConfigFileName)
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// defaultHistoryPath returns $XDG_DATA_HOME/pomodoro/pomodoros.log
// or ~/.local/share/pomodoro/pomodoros.log.
func defaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.HistoryPath(dataHome)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
