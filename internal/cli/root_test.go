package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/runoshun/pomodoro/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_InvalidTime(t *testing.T) {
	for _, value := range []string{"abc", "0", "-3", "2.5", ""} {
		t.Run(value, func(t *testing.T) {
			env := newTestEnv(t)
			root := NewRootCommand(env.container, "test")
			root.SetArgs([]string{"--time", value})

			err := root.Execute()

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTime)
			assert.Empty(t, env.display.String(), "no timer should start")
		})
	}
}

func TestNewRootCommand_RunsUntilInterrupted(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// One pomodoro of 21 renders completes, then the break is interrupted.
	env.container.Sleeper = &testutil.MockSleeper{Cancel: cancel, CancelAfter: domain.ProgressSteps + 2}

	root := NewRootCommand(env.container, "test")
	root.SetArgs([]string{"--time", "10"})
	err := root.ExecuteContext(ctx)

	require.NoError(t, err)
	output := env.display.String()
	assert.Contains(t, output, "Pomodoro!")
	assert.Contains(t, output, "(duration: 10m)")
	assert.Contains(t, output, "| 100%")
	assert.Contains(t, output, "Pomodoro Time is up!")
	assert.Contains(t, output, "Short break!")
	assert.Contains(t, output, "You've completed 1 full pomodoros.")
	require.Len(t, env.log.Records, 1)
	assert.Equal(t, 600, int(env.log.Records[0].Duration.Seconds()))
}

func TestNewRootCommand_RejectsArguments(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootCommand(env.container, "test")
	root.SetArgs([]string{"extra"})

	assert.Error(t, root.Execute())
}

func TestNewRootCommand_Help(t *testing.T) {
	root := NewRootCommand(nil, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "--time")
	assert.Contains(t, buf.String(), "stats")
	assert.NotContains(t, buf.String(), "completion")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	env := newTestEnv(t)
	env.container.AppConfig.Warnings = []string{"unknown config key: pomodoro.colour"}

	root := NewRootCommand(env.container, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"stats"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown config key: pomodoro.colour")
}

func TestParseMinutes(t *testing.T) {
	minutes, err := parseMinutes("", false)
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	minutes, err = parseMinutes(" 45 ", true)
	require.NoError(t, err)
	assert.Equal(t, 45, minutes)

	_, err = parseMinutes("ten", true)
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}
