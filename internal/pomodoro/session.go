// Package pomodoro implements the focus/break session machine. Every function
// is pure: it takes a timer state and returns the next one together with a
// flag telling whether anything changed.
package pomodoro

import (
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// TickResult describes the side outcomes of a tick.
type TickResult struct {
	// FocusSecond is set when the tick counted one second of focus on the
	// focused task.
	FocusSecond bool
	// Switched is set when the tick ended the session.
	Switched bool
	// Ended is the session that ended when Switched is set.
	Ended model.SessionType
}

func Start(p model.PomodoroState) (model.PomodoroState, bool) {
	if p.Running() {
		return p, false
	}
	p.IsActive = true
	p.IsPaused = false
	if p.RemainingTime <= 0 {
		p.RemainingTime = p.Settings.Duration(p.CurrentSession)
	}
	return p, true
}

func Pause(p model.PomodoroState) (model.PomodoroState, bool) {
	if !p.Running() {
		return p, false
	}
	p.IsPaused = true
	return p, true
}

func Resume(p model.PomodoroState) (model.PomodoroState, bool) {
	if !p.IsActive || !p.IsPaused {
		return p, false
	}
	p.IsPaused = false
	return p, true
}

// Reset stops the timer and rewinds the current session.
func Reset(p model.PomodoroState) (model.PomodoroState, bool) {
	full := p.Settings.Duration(p.CurrentSession)
	if !p.IsActive && !p.IsPaused && p.RemainingTime == full {
		return p, false
	}
	p.IsActive = false
	p.IsPaused = false
	p.RemainingTime = full
	return p, true
}

// Skip abandons the current session. A skipped focus session is neither
// counted as a cycle nor recorded in the focus history.
func Skip(p model.PomodoroState) (model.PomodoroState, bool) {
	next := model.SessionFocus
	if p.CurrentSession == model.SessionFocus {
		next = model.SessionShortBreak
	}
	return enter(p, next), true
}

// Switch ends the current session at now and moves to the next one. Ending a
// focus session counts a cycle and appends a focus record covering the full
// session. The timer stops after every switch and waits for Start.
func Switch(p model.PomodoroState, now time.Time) model.PomodoroState {
	if p.CurrentSession != model.SessionFocus {
		return enter(p, model.SessionFocus)
	}

	p.CurrentCycle++
	dur := p.Settings.FocusDuration
	history := make([]model.FocusRecord, len(p.FocusHistory), len(p.FocusHistory)+1)
	copy(history, p.FocusHistory)
	p.FocusHistory = append(history, model.FocusRecord{
		StartTime: now.Add(-time.Duration(dur) * time.Second),
		EndTime:   now,
		Duration:  dur,
		TaskID:    p.FocusedTaskID,
	})

	next := model.SessionShortBreak
	if interval := p.Settings.LongBreakInterval; interval > 0 && p.CurrentCycle%interval == 0 {
		next = model.SessionLongBreak
	}
	return enter(p, next)
}

// Tick advances a running timer by one second. The tick that brings the
// remaining time to zero performs the switch, so it never goes negative.
func Tick(p model.PomodoroState, now time.Time) (model.PomodoroState, TickResult, bool) {
	if !p.Running() {
		return p, TickResult{}, false
	}
	res := TickResult{
		FocusSecond: p.CurrentSession == model.SessionFocus && p.FocusedTaskID != "",
	}
	if p.RemainingTime-1 > 0 {
		p.RemainingTime--
		return p, res, true
	}
	res.Switched = true
	res.Ended = p.CurrentSession
	return Switch(p, now), res, true
}

// WithSettings applies new settings. An idle timer is rewound to the new
// duration of its session; a running one keeps its remaining time.
func WithSettings(p model.PomodoroState, s model.PomodoroSettings) (model.PomodoroState, bool) {
	if s.Validate() != nil || s == p.Settings {
		return p, false
	}
	p.Settings = s
	if !p.IsActive {
		p.RemainingTime = s.Duration(p.CurrentSession)
	}
	return p, true
}

func enter(p model.PomodoroState, session model.SessionType) model.PomodoroState {
	p.CurrentSession = session
	p.RemainingTime = p.Settings.Duration(session)
	p.IsActive = false
	p.IsPaused = false
	return p
}
