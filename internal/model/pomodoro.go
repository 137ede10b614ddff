package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidSettings = errors.New("model: invalid pomodoro settings")

type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "shortBreak"
	SessionLongBreak  SessionType = "longBreak"
)

func (s SessionType) IsValid() bool {
	switch s {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

// PomodoroSettings holds session durations in seconds.
type PomodoroSettings struct {
	FocusDuration      int `json:"focusDuration"`
	ShortBreakDuration int `json:"shortBreakDuration"`
	LongBreakDuration  int `json:"longBreakDuration"`
	LongBreakInterval  int `json:"longBreakInterval"`
}

func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		FocusDuration:      25 * 60,
		ShortBreakDuration: 5 * 60,
		LongBreakDuration:  15 * 60,
		LongBreakInterval:  4,
	}
}

func (s PomodoroSettings) Validate() error {
	if s.FocusDuration <= 0 || s.ShortBreakDuration <= 0 || s.LongBreakDuration <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidSettings)
	}
	if s.LongBreakInterval <= 0 {
		return fmt.Errorf("%w: long break interval must be positive", ErrInvalidSettings)
	}
	return nil
}

// Duration returns the configured length of a session in seconds.
func (s PomodoroSettings) Duration(session SessionType) int {
	switch session {
	case SessionShortBreak:
		return s.ShortBreakDuration
	case SessionLongBreak:
		return s.LongBreakDuration
	default:
		return s.FocusDuration
	}
}

type FocusRecord struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Duration  int       `json:"duration"`
	TaskID    string    `json:"taskId,omitempty"`
}

type PomodoroState struct {
	IsActive       bool             `json:"isActive"`
	IsPaused       bool             `json:"isPaused"`
	RemainingTime  int              `json:"remainingTime"`
	CurrentSession SessionType      `json:"currentSession"`
	CurrentCycle   int              `json:"currentCycle"`
	FocusedTaskID  string           `json:"focusedTaskId,omitempty"`
	FocusHistory   []FocusRecord    `json:"focusHistory"`
	Settings       PomodoroSettings `json:"settings"`
}

func NewPomodoroState(settings PomodoroSettings) PomodoroState {
	return PomodoroState{
		RemainingTime:  settings.FocusDuration,
		CurrentSession: SessionFocus,
		FocusHistory:   []FocusRecord{},
		Settings:       settings,
	}
}

// Running reports whether the timer should be ticking.
func (p PomodoroState) Running() bool {
	return p.IsActive && !p.IsPaused
}

// TotalFocusSeconds sums the recorded focus sessions.
func (p PomodoroState) TotalFocusSeconds() int {
	total := 0
	for _, r := range p.FocusHistory {
		total += r.Duration
	}
	return total
}
