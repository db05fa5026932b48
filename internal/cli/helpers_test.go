package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/pomodoro/internal/app"
	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/infra/config"
	"github.com/runoshun/pomodoro/internal/infra/logging"
	"github.com/runoshun/pomodoro/internal/testutil"
	"github.com/runoshun/pomodoro/internal/ui"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

// testEnv bundles a container with the mocks behind it.
type testEnv struct {
	container *app.Container
	timers    *testutil.MockTimerRepository
	log       *testutil.MockCompletionLog
	notifier  *testutil.MockNotifier
	clock     *testutil.MockClock
	display   *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		timers:   testutil.NewMockTimerRepository(),
		log:      &testutil.MockCompletionLog{},
		notifier: &testutil.MockNotifier{},
		clock:    &testutil.MockClock{NowTime: testNow},
		display:  &bytes.Buffer{},
	}

	cfg := domain.NewDefaultConfig()
	cfg.Bar.PluginDir = "/plugins"
	c := app.NewWithDeps(cfg, env.timers, env.log, env.notifier, env.clock, logging.Discard())
	c.Prompter = &testutil.MockPrompter{}
	c.Display = ui.NewDisplay(env.display)
	c.ConfigManager = config.NewManagerWithPath(filepath.Join(t.TempDir(), "pomodoro", "config.toml"))
	env.container = c
	return env
}
