package reducer

import (
	"github.com/sandeepkv93/taskflow/internal/model"
)

// loadState returns a normalized copy of in. Filters, selection and the
// running timer are transient and do not survive a load.
func loadState(s *model.AppState, in *model.AppState) *model.AppState {
	if in == nil {
		return s
	}
	next := in.Clone()

	next.Tasks = normalizeTasks(in.Tasks)
	if next.Lists == nil {
		next.Lists = []model.List{}
	}
	if next.Columns == nil {
		next.Columns = []model.Column{}
	}
	if next.Habits == nil {
		next.Habits = []model.Habit{}
	}
	if next.Countdowns == nil {
		next.Countdowns = []model.CountdownEvent{}
	}
	if next.UnlockedAchievements == nil {
		next.UnlockedAchievements = []string{}
	}

	registry := model.NormalizeTags(in.Tags)
	for _, t := range next.Tasks {
		registry = unionTags(registry, t.Tags)
	}
	next.Tags = registry

	next.ActiveTag = ""
	next.SelectedTaskID = ""
	if _, ok := next.ListByID(next.ActiveListID); !ok {
		next.ActiveListID = model.DefaultListID
	}
	if !next.SortOrder.IsValid() {
		next.SortOrder = model.SortManual
	}
	if !next.View.IsValid() {
		next.View = model.ViewTasks
	}

	next.Pomodoro = normalizePomodoro(in.Pomodoro)
	if _, _, ok := next.TaskByID(next.Pomodoro.FocusedTaskID); !ok {
		next.Pomodoro.FocusedTaskID = ""
	}
	return next
}

func normalizeTasks(in []model.Task) []model.Task {
	out := make([]model.Task, 0, len(in))
	for _, t := range in {
		t.Tags = model.NormalizeTags(t.Tags)
		if t.Subtasks == nil {
			t.Subtasks = []model.Subtask{}
		}
		if t.Comments == nil {
			t.Comments = []model.Comment{}
		}
		if t.ListID == "" {
			t.ListID = model.DefaultListID
		}
		switch {
		case !t.Completed:
			t.CompletedAt = nil
		case t.CompletedAt == nil:
			at := t.CreatedAt
			t.CompletedAt = &at
		}
		out = append(out, t)
	}
	return out
}

func normalizePomodoro(p model.PomodoroState) model.PomodoroState {
	if p.Settings.Validate() != nil {
		p.Settings = model.DefaultPomodoroSettings()
	}
	if !p.CurrentSession.IsValid() {
		p.CurrentSession = model.SessionFocus
	}
	full := p.Settings.Duration(p.CurrentSession)
	if p.RemainingTime <= 0 || p.RemainingTime > full {
		p.RemainingTime = full
	}
	if p.CurrentCycle < 0 {
		p.CurrentCycle = 0
	}
	if p.FocusHistory == nil {
		p.FocusHistory = []model.FocusRecord{}
	}
	p.IsActive = false
	p.IsPaused = false
	return p
}
