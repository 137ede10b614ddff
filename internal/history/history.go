// Package history wraps the core reducer with linear undo and redo.
package history

import (
	"slices"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/pomodoro"
)

// History is immutable: Reduce returns a new value on change and the same
// pointer otherwise. Past is ordered oldest first; Future is ordered next
// first.
type History struct {
	Past    []*model.AppState
	Present *model.AppState
	Future  []*model.AppState
}

func New(present *model.AppState) *History {
	return &History{Present: present}
}

func (h *History) CanUndo() bool { return len(h.Past) > 0 }

func (h *History) CanRedo() bool { return len(h.Future) > 0 }

// Core is the reducer being wrapped.
type Core interface {
	Reduce(*model.AppState, action.Action) *model.AppState
}

// DefaultUndoable lists the actions recorded on the undo stack. Timer
// controls, ticks, navigation and achievement unlocks are not undoable.
func DefaultUndoable() []action.Type {
	return []action.Type{
		action.TypeAddTask,
		action.TypeUpdateTask,
		action.TypeDeleteTask,
		action.TypeToggleTask,
		action.TypeMoveTask,
		action.TypeReorderTasks,
		action.TypeAddSubtask,
		action.TypeToggleSubtask,
		action.TypeDeleteSubtask,
		action.TypeAddComment,
		action.TypeAssignTask,
		action.TypeAddList,
		action.TypeUpdateList,
		action.TypeDeleteList,
		action.TypeAddListMember,
		action.TypeAddColumn,
		action.TypeRenameColumn,
		action.TypeDeleteColumn,
		action.TypeReorderColumns,
		action.TypeAddTag,
		action.TypeDeleteTag,
		action.TypeAddHabit,
		action.TypeDeleteHabit,
		action.TypeToggleHabit,
		action.TypeAddCountdown,
		action.TypeDeleteCountdown,
		action.TypeUpdatePomodoroSettings,
	}
}

type Reducer struct {
	core     Core
	undoable map[action.Type]bool
	limit    int
}

type Option func(*Reducer)

// WithLimit bounds the undo stack; the oldest entries are dropped first.
// Zero or less keeps every entry.
func WithLimit(n int) Option {
	return func(r *Reducer) { r.limit = n }
}

// WithUndoable replaces the default allow-list.
func WithUndoable(types ...action.Type) Option {
	return func(r *Reducer) {
		r.undoable = make(map[action.Type]bool, len(types))
		for _, t := range types {
			r.undoable[t] = true
		}
	}
}

func NewReducer(core Core, opts ...Option) *Reducer {
	r := &Reducer{core: core}
	WithUndoable(DefaultUndoable()...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reducer) IsUndoable(t action.Type) bool {
	return r.undoable[t]
}

func (r *Reducer) Reduce(h *History, a action.Action) *History {
	switch act := a.(type) {
	case action.Undo:
		return undo(h)
	case action.Redo:
		return redo(h)
	case action.ClearHistory:
		if !h.CanUndo() && !h.CanRedo() {
			return h
		}
		return &History{Present: h.Present}
	case action.LoadState:
		present := r.core.Reduce(h.Present, act)
		if present == h.Present {
			return h
		}
		return &History{Present: present}
	}

	present := r.core.Reduce(h.Present, a)
	if present == h.Present {
		return h
	}
	if !r.undoable[a.Type()] {
		return &History{Past: h.Past, Present: present, Future: h.Future}
	}

	past := make([]*model.AppState, 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, h.Present)
	if r.limit > 0 && len(past) > r.limit {
		past = past[len(past)-r.limit:]
	}
	return &History{Past: past, Present: present}
}

func undo(h *History) *History {
	if !h.CanUndo() {
		return h
	}
	last := len(h.Past) - 1
	future := make([]*model.AppState, 0, len(h.Future)+1)
	future = append(future, h.Present)
	future = append(future, h.Future...)
	return &History{
		Past:    h.Past[:last:last],
		Present: carry(h.Present, h.Past[last]),
		Future:  future,
	}
}

func redo(h *History) *History {
	if !h.CanRedo() {
		return h
	}
	past := make([]*model.AppState, 0, len(h.Past)+1)
	past = append(past, h.Past...)
	past = append(past, h.Present)
	return &History{
		Past:    past,
		Present: carry(h.Present, h.Future[0]),
		Future:  h.Future[1:],
	}
}

// carry returns to with the values owned by non-undoable actions taken from
// from: unlocked achievements (never removed), the running timer with its
// focus history, and per-task focus time. to is returned unchanged when
// nothing differs.
func carry(from, to *model.AppState) *model.AppState {
	var next *model.AppState
	clone := func() *model.AppState {
		if next == nil {
			next = to.Clone()
		}
		return next
	}

	var missing []string
	for _, id := range from.UnlockedAchievements {
		if !to.IsUnlocked(id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		n := clone()
		n.UnlockedAchievements = append(slices.Clone(to.UnlockedAchievements), missing...)
	}

	p := from.Pomodoro
	if p.Settings != to.Pomodoro.Settings {
		p, _ = pomodoro.WithSettings(p, to.Pomodoro.Settings)
		p.Settings = to.Pomodoro.Settings
	}
	if p.FocusedTaskID != "" {
		if _, _, ok := to.TaskByID(p.FocusedTaskID); !ok {
			p.FocusedTaskID = ""
		}
	}
	if !samePomodoro(p, to.Pomodoro) {
		clone().Pomodoro = p
	}

	var tasks []model.Task
	for i, t := range to.Tasks {
		src, _, ok := from.TaskByID(t.ID)
		if !ok || src.TotalFocusTime == t.TotalFocusTime {
			continue
		}
		if tasks == nil {
			tasks = slices.Clone(to.Tasks)
		}
		tasks[i].TotalFocusTime = src.TotalFocusTime
	}
	if tasks != nil {
		clone().Tasks = tasks
	}

	if next == nil {
		return to
	}
	return next
}

func samePomodoro(a, b model.PomodoroState) bool {
	return a.IsActive == b.IsActive &&
		a.IsPaused == b.IsPaused &&
		a.RemainingTime == b.RemainingTime &&
		a.CurrentSession == b.CurrentSession &&
		a.CurrentCycle == b.CurrentCycle &&
		a.FocusedTaskID == b.FocusedTaskID &&
		a.Settings == b.Settings &&
		slices.Equal(a.FocusHistory, b.FocusHistory)
}
