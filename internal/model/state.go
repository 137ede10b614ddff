package model

import (
	"sort"
	"strings"
)

type View string

const (
	ViewTasks        View = "tasks"
	ViewBoard        View = "board"
	ViewCalendar     View = "calendar"
	ViewHabits       View = "habits"
	ViewPomodoro     View = "pomodoro"
	ViewCountdowns   View = "countdowns"
	ViewAchievements View = "achievements"
)

func (v View) IsValid() bool {
	switch v {
	case ViewTasks, ViewBoard, ViewCalendar, ViewHabits, ViewPomodoro, ViewCountdowns, ViewAchievements:
		return true
	default:
		return false
	}
}

type SortOrder string

const (
	SortManual    SortOrder = "manual"
	SortDueDate   SortOrder = "dueDate"
	SortPriority  SortOrder = "priority"
	SortCreatedAt SortOrder = "createdAt"
	SortTitle     SortOrder = "title"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortManual, SortDueDate, SortPriority, SortCreatedAt, SortTitle:
		return true
	default:
		return false
	}
}

// AppState is the whole application aggregate. Values are treated as
// immutable: transitions build a new AppState and replace any slice they
// change instead of writing through a shared one.
type AppState struct {
	Tasks                []Task           `json:"tasks"`
	Lists                []List           `json:"lists"`
	Columns              []Column         `json:"columns"`
	Tags                 []string         `json:"tags"`
	Habits               []Habit          `json:"habits"`
	Countdowns           []CountdownEvent `json:"countdowns"`
	Pomodoro             PomodoroState    `json:"pomodoro"`
	ActiveListID         string           `json:"activeListId"`
	ActiveTag            string           `json:"activeTag,omitempty"`
	SelectedTaskID       string           `json:"selectedTaskId,omitempty"`
	SortOrder            SortOrder        `json:"sortOrder"`
	UnlockedAchievements []string         `json:"unlockedAchievements"`
	View                 View             `json:"view"`
}

// NewAppState returns an empty state with default navigation and timer.
func NewAppState() *AppState {
	return &AppState{
		Tasks:                []Task{},
		Lists:                []List{},
		Columns:              []Column{},
		Tags:                 []string{},
		Habits:               []Habit{},
		Countdowns:           []CountdownEvent{},
		Pomodoro:             NewPomodoroState(DefaultPomodoroSettings()),
		ActiveListID:         DefaultListID,
		SortOrder:            SortManual,
		UnlockedAchievements: []string{},
		View:                 ViewTasks,
	}
}

// Clone returns a shallow copy; slices are shared with s.
func (s *AppState) Clone() *AppState {
	next := *s
	return &next
}

func (s *AppState) TaskByID(id string) (Task, int, bool) {
	for i, t := range s.Tasks {
		if t.ID == id {
			return t, i, true
		}
	}
	return Task{}, -1, false
}

func (s *AppState) ListByID(id string) (List, bool) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return List{}, false
}

func (s *AppState) ColumnByID(id string) (Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

func (s *AppState) HabitByID(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

func (s *AppState) ColumnsForList(listID string) []Column {
	out := make([]Column, 0)
	for _, c := range s.Columns {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out
}

func (s *AppState) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (s *AppState) IsUnlocked(id string) bool {
	for _, u := range s.UnlockedAchievements {
		if u == id {
			return true
		}
	}
	return false
}

func (s *AppState) CompletedTaskCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// VisibleTasks applies the active tag filter, or the active list filter when
// no tag is selected, then orders the result by SortOrder.
func (s *AppState) VisibleTasks() []Task {
	out := make([]Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		switch {
		case s.ActiveTag != "":
			if !t.HasTag(s.ActiveTag) {
				continue
			}
		case s.ActiveListID != "":
			if t.ListID != s.ActiveListID {
				continue
			}
		}
		out = append(out, t)
	}
	SortTasks(out, s.SortOrder)
	return out
}

// SortTasks orders tasks in place. SortManual keeps the stored order.
func SortTasks(tasks []Task, order SortOrder) {
	switch order {
	case SortDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDate, tasks[j].DueDate
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return a.Before(*b)
		})
	case SortPriority:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority > tasks[j].Priority })
	case SortCreatedAt:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	case SortTitle:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.ToLower(tasks[i].Title) < strings.ToLower(tasks[j].Title)
		})
	}
}
