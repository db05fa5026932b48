// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/infra/config"
	"github.com/runoshun/pomodoro/internal/infra/history"
	"github.com/runoshun/pomodoro/internal/infra/logging"
	"github.com/runoshun/pomodoro/internal/infra/notifier"
	"github.com/runoshun/pomodoro/internal/infra/statefile"
	"github.com/runoshun/pomodoro/internal/infra/terminal"
	"github.com/runoshun/pomodoro/internal/ui"
	"github.com/runoshun/pomodoro/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Timers        domain.TimerRepository
	History       domain.CompletionLog
	Notifier      domain.Notifier
	Prompter      domain.Prompter
	Display       domain.TimerDisplay
	Sleeper       domain.Sleeper
	Clock         domain.Clock
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config // Effective configuration
}

// New creates a new Container from the config file and the process environment.
func New() (*Container, error) {
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(os.Stderr, cfg.Log.Level)

	return &Container{
		Timers:        statefile.New(cfg.Bar.StatePath),
		History:       history.New(cfg.History.Path),
		Notifier:      newNotifier(cfg, logger),
		Prompter:      terminal.NewLinePrompter(os.Stdin, os.Stdout),
		Display:       ui.NewDisplay(os.Stdout),
		Sleeper:       domain.RealSleeper{},
		Clock:         domain.RealClock{},
		ConfigManager: config.NewManagerWithPath(loader.Path()),
		Logger:        logger,
		AppConfig:     cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Prompter, Display, Sleeper and ConfigManager can be set on the result.
func NewWithDeps(cfg *domain.Config, timers domain.TimerRepository, log domain.CompletionLog, n domain.Notifier, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Timers:    timers,
		History:   log,
		Notifier:  n,
		Sleeper:   domain.RealSleeper{},
		Clock:     clock,
		Logger:    logger,
		AppConfig: cfg,
	}
}

// newNotifier builds the configured notifier. A disabled or unusable
// command falls back to a no-op notifier.
func newNotifier(cfg *domain.Config, logger *slog.Logger) domain.Notifier {
	if !cfg.Notify.Enabled {
		return notifier.Nop{}
	}
	cmd, err := notifier.NewCommand(cfg.Notify.Command)
	if err != nil {
		logger.Warn("notifications disabled", "command", cfg.Notify.Command, "error", err)
		return notifier.Nop{}
	}
	return cmd
}

// BarExecutable returns the command the status-bar host runs for menu actions.
func (c *Container) BarExecutable() string {
	return ResolveBarExecutable(c.AppConfig.Bar.PluginDir, os.Args[0], os.Executable)
}

// ResolveBarExecutable joins pluginDir with the base name of argv0, or
// falls back to the running executable when pluginDir is empty.
func ResolveBarExecutable(pluginDir, argv0 string, executable func() (string, error)) string {
	if pluginDir != "" {
		return filepath.Join(pluginDir, filepath.Base(argv0))
	}
	if exe, err := executable(); err == nil {
		return exe
	}
	return argv0
}

// UseCase factory methods

// RunTimerUseCase returns a new RunTimer use case.
func (c *Container) RunTimerUseCase() *usecase.RunTimer {
	var log domain.CompletionLog
	if c.AppConfig.History.Enabled {
		log = c.History
	}
	return usecase.NewRunTimer(c.AppConfig, c.Display, c.Prompter, c.Sleeper, c.Notifier, log, c.Clock, c.Logger)
}

// ApplyBarActionUseCase returns a new ApplyBarAction use case.
func (c *Container) ApplyBarActionUseCase() *usecase.ApplyBarAction {
	duration := time.Duration(c.AppConfig.BarMinutes()) * time.Minute
	return usecase.NewApplyBarAction(c.Timers, c.Notifier, c.Clock, c.Logger, duration, c.AppConfig.Notify.Title)
}

// ShowStatsUseCase returns a new ShowStats use case.
func (c *Container) ShowStatsUseCase() *usecase.ShowStats {
	return usecase.NewShowStats(c.History, c.Clock)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
