package reducer

import (
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/pomodoro"
)

func withPomodoro(s *model.AppState, p model.PomodoroState, changed bool) *model.AppState {
	if !changed {
		return s
	}
	next := s.Clone()
	next.Pomodoro = p
	return next
}

func startTimer(s *model.AppState) *model.AppState {
	p, changed := pomodoro.Start(s.Pomodoro)
	return withPomodoro(s, p, changed)
}

func pauseTimer(s *model.AppState) *model.AppState {
	p, changed := pomodoro.Pause(s.Pomodoro)
	return withPomodoro(s, p, changed)
}

func resumeTimer(s *model.AppState) *model.AppState {
	p, changed := pomodoro.Resume(s.Pomodoro)
	return withPomodoro(s, p, changed)
}

func resetTimer(s *model.AppState) *model.AppState {
	p, changed := pomodoro.Reset(s.Pomodoro)
	return withPomodoro(s, p, changed)
}

func skipSession(s *model.AppState) *model.AppState {
	p, changed := pomodoro.Skip(s.Pomodoro)
	return withPomodoro(s, p, changed)
}

func updatePomodoroSettings(s *model.AppState, settings model.PomodoroSettings) *model.AppState {
	p, changed := pomodoro.WithSettings(s.Pomodoro, settings)
	return withPomodoro(s, p, changed)
}

// tick advances the timer and credits one focus second to the focused task.
func (r *Reducer) tick(s *model.AppState) *model.AppState {
	p, res, changed := pomodoro.Tick(s.Pomodoro, r.now())
	if !changed {
		return s
	}
	next := withPomodoro(s, p, true)
	if res.FocusSecond {
		if t, i, ok := s.TaskByID(s.Pomodoro.FocusedTaskID); ok {
			t.TotalFocusTime++
			next.Tasks = replaceAt(s.Tasks, i, t)
		}
	}
	return next
}

func setFocusTask(s *model.AppState, taskID string) *model.AppState {
	if s.Pomodoro.FocusedTaskID == taskID {
		return s
	}
	if taskID != "" {
		if _, _, ok := s.TaskByID(taskID); !ok {
			return s
		}
	}
	p := s.Pomodoro
	p.FocusedTaskID = taskID
	return withPomodoro(s, p, true)
}
