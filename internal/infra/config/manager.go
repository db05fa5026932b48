package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/pomodoro/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	path string // Path to config.toml
}

// NewManager creates a Manager for the default config location.
func NewManager() *Manager {
	return &Manager{path: DefaultConfigPath()}
}

// NewManagerWithPath creates a Manager for a specific file.
// This is useful for testing.
func NewManagerWithPath(path string) *Manager {
	return &Manager{path: path}
}

// GetConfigInfo returns information about the config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	if m.path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file with the default template.
func (m *Manager) InitConfig(cfg *domain.Config) error {
	if m.path == "" {
		return domain.ErrNoConfigDir
	}

	// Check if file already exists
	if _, err := os.Stat(m.path); err == nil {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(m.path, []byte(content), 0o600)
}
