package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/pomodoro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBar(t *testing.T, env *testEnv, args ...string) string {
	t.Helper()
	cmd := NewBarCommand(env.container, "test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestBarCommand_Start(t *testing.T) {
	env := newTestEnv(t)

	out := runBar(t, env, "--start")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "🍅 25:00 | color=red", lines[0])
	assert.Equal(t, "---", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "Pause | bash=/plugins/"))
	assert.True(t, strings.HasSuffix(lines[2], "param1=--pause terminal=false refresh=true"))
	assert.True(t, strings.HasPrefix(lines[3], "Stop | bash=/plugins/"))
	assert.Equal(t, domain.TimerRunning, env.timers.Record.Status)
}

func TestBarCommand_StartIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	first := runBar(t, env, "-s")
	env.clock.Advance(2 * time.Minute)
	second := runBar(t, env, "-s")

	assert.Contains(t, first, "🍅 25:00")
	assert.Contains(t, second, "🍅 23:00")
	assert.Equal(t, testNow, env.timers.Record.StartTime)
}

func TestBarCommand_Pause(t *testing.T) {
	env := newTestEnv(t)

	out := runBar(t, env, "-p")

	assert.True(t, strings.HasPrefix(out, "⏸ paused | color=orange\n---\nResume | bash=/plugins/"))
	assert.Contains(t, out, "param1=--start")
	assert.Equal(t, domain.TimerPaused, env.timers.Record.Status)
}

func TestBarCommand_StopWinsOverOtherFlags(t *testing.T) {
	env := newTestEnv(t)
	env.timers.Record = domain.TimerRecord{StartTime: testNow, Status: domain.TimerRunning}

	out := runBar(t, env, "-s", "-p", "-t")

	assert.True(t, strings.HasPrefix(out, "🍅\n---\nStart | bash=/plugins/"))
	assert.True(t, env.timers.Record.IsStopped())
}

func TestBarCommand_CheckExpires(t *testing.T) {
	env := newTestEnv(t)
	env.timers.Record = domain.TimerRecord{StartTime: testNow.Add(-26 * time.Minute), Status: domain.TimerRunning}

	out := runBar(t, env)

	assert.True(t, strings.HasPrefix(out, "🍅\n"))
	assert.True(t, env.timers.Record.IsStopped())
	require.Len(t, env.notifier.Sent, 1)
	assert.Equal(t, domain.PomodoroMessage, env.notifier.Sent[0].Message)
}

func TestBarCommand_UsesBarMinutes(t *testing.T) {
	env := newTestEnv(t)
	env.container.AppConfig.Bar.Minutes = 5

	out := runBar(t, env, "--start")

	assert.True(t, strings.HasPrefix(out, "🍅 05:00 | color=red"))
}

func TestBarAction(t *testing.T) {
	assert.Equal(t, domain.BarCheck, barAction(false, false, false))
	assert.Equal(t, domain.BarStart, barAction(true, false, false))
	assert.Equal(t, domain.BarPause, barAction(true, false, true))
	assert.Equal(t, domain.BarStop, barAction(true, true, true))
}
