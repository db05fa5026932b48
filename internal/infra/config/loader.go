// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/pomodoro/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml
}

// NewLoader creates a Loader for the default config location.
func NewLoader() *Loader {
	return &Loader{path: DefaultConfigPath()}
}

// NewLoaderWithPath creates a Loader for a specific file.
// This is useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the default configuration overlaid with the config file.
// A missing file is not an error. Unknown keys are reported in Config.Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		switch {
		case err == nil:
			warnings, decodeErr := decode(data, cfg)
			if decodeErr != nil {
				return nil, fmt.Errorf("parse %s: %w", l.path, decodeErr)
			}
			cfg.Warnings = warnings
		case errors.Is(err, os.ErrNotExist):
			// Defaults only
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	resolvePaths(cfg)
	return cfg, nil
}

// decode unmarshals data into cfg and collects unknown keys as warnings.
func decode(data []byte, cfg *domain.Config) ([]string, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(cfg)
	if err == nil {
		return nil, nil
	}

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return nil, err
	}

	// Decode again leniently so known keys still apply.
	fresh := domain.NewDefaultConfig()
	if err := toml.Unmarshal(data, fresh); err != nil {
		return nil, err
	}
	*cfg = *fresh

	warnings := make([]string, 0, len(strict.Errors))
	for _, e := range strict.Errors {
		warnings = append(warnings, fmt.Sprintf("unknown config key: %s", strings.Join(e.Key(), ".")))
	}
	sort.Strings(warnings)
	return warnings, nil
}

// resolvePaths fills in default file locations and expands "~".
func resolvePaths(cfg *domain.Config) {
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath()
	}
	cfg.History.Path = expandHome(cfg.History.Path)

	if cfg.Bar.StatePath == "" {
		cfg.Bar.StatePath = domain.DefaultStatePath
	}
	cfg.Bar.StatePath = expandHome(cfg.Bar.StatePath)

	if dir := os.Getenv(domain.PluginDirEnv); dir != "" {
		cfg.Bar.PluginDir = dir
	}
	cfg.Bar.PluginDir = expandHome(cfg.Bar.PluginDir)
}
