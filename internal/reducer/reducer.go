// Package reducer holds the pure state transition function. Reduce never
// mutates its input and returns the input pointer unchanged whenever an
// action has no effect, so callers can detect no-ops by pointer comparison.
package reducer

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
)

type Reducer struct {
	clock clockwork.Clock
}

type Option func(*Reducer)

// WithClock sets the clock used for completion and focus timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(r *Reducer) {
		if c != nil {
			r.clock = c
		}
	}
}

func New(opts ...Option) *Reducer {
	r := &Reducer{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reducer) now() time.Time {
	return r.clock.Now()
}

func (r *Reducer) Reduce(s *model.AppState, a action.Action) *model.AppState {
	if load, ok := a.(action.LoadState); ok {
		return loadState(s, load.State)
	}
	if s == nil {
		return s
	}

	switch act := a.(type) {
	case action.AddTask:
		return r.addTask(s, act.Task)
	case action.UpdateTask:
		return r.updateTask(s, act.Task)
	case action.DeleteTask:
		return deleteTask(s, act.ID)
	case action.ToggleTask:
		return r.toggleTask(s, act.ID)
	case action.MoveTask:
		return moveTask(s, act.ID, act.ListID, act.ColumnID)
	case action.ReorderTasks:
		return reorderTasks(s, act.DraggedID, act.TargetID)
	case action.AddSubtask:
		return addSubtask(s, act.TaskID, act.Subtask)
	case action.ToggleSubtask:
		return toggleSubtask(s, act.TaskID, act.SubtaskID)
	case action.DeleteSubtask:
		return deleteSubtask(s, act.TaskID, act.SubtaskID)
	case action.AddComment:
		return r.addComment(s, act.TaskID, act.Comment)
	case action.AssignTask:
		return assignTask(s, act.TaskID, act.UserID)

	case action.AddList:
		return addList(s, act.List, act.Columns)
	case action.UpdateList:
		return updateList(s, act.List)
	case action.DeleteList:
		return deleteList(s, act.ID)
	case action.AddListMember:
		return addListMember(s, act.ListID, act.UserID)
	case action.AddColumn:
		return addColumn(s, act.Column)
	case action.RenameColumn:
		return renameColumn(s, act.ID, act.Name)
	case action.DeleteColumn:
		return deleteColumn(s, act.ID)
	case action.ReorderColumns:
		return reorderColumns(s, act.DraggedID, act.TargetID)

	case action.AddTag:
		return addTag(s, act.Name)
	case action.DeleteTag:
		return deleteTag(s, act.Name)

	case action.AddHabit:
		return r.addHabit(s, act.Habit)
	case action.DeleteHabit:
		return deleteHabit(s, act.ID)
	case action.ToggleHabit:
		return toggleHabit(s, act.ID, act.Date)
	case action.AddCountdown:
		return addCountdown(s, act.Event)
	case action.DeleteCountdown:
		return deleteCountdown(s, act.ID)

	case action.StartTimer:
		return startTimer(s)
	case action.PauseTimer:
		return pauseTimer(s)
	case action.ResumeTimer:
		return resumeTimer(s)
	case action.ResetTimer:
		return resetTimer(s)
	case action.SkipSession:
		return skipSession(s)
	case action.Tick:
		return r.tick(s)
	case action.SetFocusTask:
		return setFocusTask(s, act.TaskID)
	case action.UpdatePomodoroSettings:
		return updatePomodoroSettings(s, act.Settings)

	case action.SetActiveList:
		return setActiveList(s, act.ID)
	case action.SetActiveTag:
		return setActiveTag(s, act.Tag)
	case action.SelectTask:
		return selectTask(s, act.ID)
	case action.SetSortOrder:
		return setSortOrder(s, act.Order)
	case action.SetView:
		return setView(s, act.View)
	case action.UnlockAchievement:
		return unlockAchievement(s, act.ID)
	}
	return s
}
