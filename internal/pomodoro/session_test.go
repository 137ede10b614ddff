package pomodoro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/pomodoro"
)

var now = time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)

func shortSettings() model.PomodoroSettings {
	return model.PomodoroSettings{
		FocusDuration:      3,
		ShortBreakDuration: 2,
		LongBreakDuration:  4,
		LongBreakInterval:  4,
	}
}

func TestStartPauseResume(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())

	p, changed := pomodoro.Start(p)
	require.True(t, changed)
	assert.True(t, p.Running())

	_, changed = pomodoro.Start(p)
	assert.False(t, changed, "starting a running timer is a no-op")

	p, changed = pomodoro.Pause(p)
	require.True(t, changed)
	assert.True(t, p.IsActive)
	assert.True(t, p.IsPaused)

	_, changed = pomodoro.Pause(p)
	assert.False(t, changed)

	p, changed = pomodoro.Resume(p)
	require.True(t, changed)
	assert.True(t, p.Running())
}

func TestTickDecrementsOnlyWhileRunning(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	_, _, changed := pomodoro.Tick(p, now)
	assert.False(t, changed, "idle timer does not tick")

	p, _ = pomodoro.Start(p)
	p, _ = pomodoro.Pause(p)
	_, _, changed = pomodoro.Tick(p, now)
	assert.False(t, changed, "paused timer does not tick")

	p, _ = pomodoro.Resume(p)
	p, res, changed := pomodoro.Tick(p, now)
	require.True(t, changed)
	assert.Equal(t, 2, p.RemainingTime)
	assert.False(t, res.FocusSecond, "no focused task")

	p.FocusedTaskID = "t1"
	_, res, _ = pomodoro.Tick(p, now)
	assert.True(t, res.FocusSecond)
}

func TestFocusSessionEndRecordsHistoryAndStops(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	p.FocusedTaskID = "t1"
	p, _ = pomodoro.Start(p)

	var res pomodoro.TickResult
	for i := 0; i < 3; i++ {
		p, res, _ = pomodoro.Tick(p, now)
	}
	require.True(t, res.Switched)
	assert.Equal(t, model.SessionFocus, res.Ended)
	assert.Equal(t, model.SessionShortBreak, p.CurrentSession)
	assert.Equal(t, 2, p.RemainingTime)
	assert.Equal(t, 1, p.CurrentCycle)
	assert.False(t, p.IsActive, "timer waits for an explicit restart")

	require.Len(t, p.FocusHistory, 1)
	rec := p.FocusHistory[0]
	assert.Equal(t, "t1", rec.TaskID)
	assert.Equal(t, 3, rec.Duration)
	assert.Equal(t, now, rec.EndTime)
	assert.Equal(t, now.Add(-3*time.Second), rec.StartTime)
}

func TestLongBreakEveryIntervalCycles(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	var got []model.SessionType
	for cycle := 1; cycle <= 4; cycle++ {
		p = pomodoro.Switch(p, now)
		got = append(got, p.CurrentSession)
		p = pomodoro.Switch(p, now)
		assert.Equal(t, model.SessionFocus, p.CurrentSession, "break always returns to focus")
	}
	assert.Equal(t, []model.SessionType{
		model.SessionShortBreak,
		model.SessionShortBreak,
		model.SessionShortBreak,
		model.SessionLongBreak,
	}, got)
	assert.Equal(t, 4, p.CurrentCycle)
	assert.Len(t, p.FocusHistory, 4)
}

func TestSwitchDoesNotShareHistoryBacking(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	p.FocusHistory = make([]model.FocusRecord, 0, 8)
	a := pomodoro.Switch(p, now)
	assert.Empty(t, p.FocusHistory)
	assert.Len(t, a.FocusHistory, 1)
}

func TestSkipAndReset(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	p, _ = pomodoro.Start(p)
	p, _, _ = pomodoro.Tick(p, now)

	p, changed := pomodoro.Reset(p)
	require.True(t, changed)
	assert.False(t, p.IsActive)
	assert.Equal(t, 3, p.RemainingTime)

	_, changed = pomodoro.Reset(p)
	assert.False(t, changed, "resetting an idle full timer is a no-op")

	p, _ = pomodoro.Skip(p)
	assert.Equal(t, model.SessionShortBreak, p.CurrentSession)
	assert.Equal(t, 0, p.CurrentCycle)
	assert.Empty(t, p.FocusHistory)

	p, _ = pomodoro.Skip(p)
	assert.Equal(t, model.SessionFocus, p.CurrentSession)
}

func TestWithSettings(t *testing.T) {
	t.Parallel()

	p := model.NewPomodoroState(shortSettings())
	next := shortSettings()
	next.FocusDuration = 10

	p, changed := pomodoro.WithSettings(p, next)
	require.True(t, changed)
	assert.Equal(t, 10, p.RemainingTime)

	_, changed = pomodoro.WithSettings(p, next)
	assert.False(t, changed)

	_, changed = pomodoro.WithSettings(p, model.PomodoroSettings{})
	assert.False(t, changed, "invalid settings are ignored")
}
