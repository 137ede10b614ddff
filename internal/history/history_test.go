package history_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/history"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/reducer"
)

func newReducer(opts ...history.Option) *history.Reducer {
	core := reducer.New(reducer.WithClock(clockwork.NewFakeClockAt(time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC))))
	return history.NewReducer(core, opts...)
}

func start() *history.History {
	s := model.NewAppState()
	s.Lists = []model.List{{ID: model.DefaultListID, Name: "Inbox", Members: []string{}}}
	return history.New(s)
}

func addTask(id string) action.Action {
	return action.AddTask{Task: model.Task{ID: id, Title: "task " + id}}
}

func TestNoOpLeavesHistoryUntouched(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, action.Undo{})
	require.True(t, h.CanRedo())

	for _, a := range []action.Action{
		action.DeleteTask{ID: "missing"},
		action.SetView{View: model.ViewTasks},
		action.Tick{},
	} {
		next := r.Reduce(h, a)
		assert.Same(t, h, next, "%s should leave history unchanged", a.Type())
		assert.Same(t, h.Present, next.Present)
	}

	empty := start()
	assert.Same(t, empty, r.Reduce(empty, action.Undo{}))
	assert.Same(t, empty, r.Reduce(empty, action.Redo{}))
	assert.Same(t, empty, r.Reduce(empty, action.ClearHistory{}))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := start()
	s0 := h.Present

	const n = 5
	for i := 0; i < n; i++ {
		h = r.Reduce(h, addTask(fmt.Sprintf("t%d", i)))
	}
	sn := h.Present
	require.Len(t, h.Past, n)
	require.Len(t, sn.Tasks, n)

	for i := 0; i < n; i++ {
		h = r.Reduce(h, action.Undo{})
	}
	assert.Same(t, s0, h.Present)
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	for i := 0; i < n; i++ {
		h = r.Reduce(h, action.Redo{})
	}
	assert.Same(t, sn, h.Present)
	assert.False(t, h.CanRedo())
	assert.Len(t, h.Past, n)
}

func TestNewUndoableActionClearsRedo(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, addTask("b"))
	h = r.Reduce(h, action.Undo{})
	require.True(t, h.CanRedo())

	h = r.Reduce(h, addTask("c"))
	assert.False(t, h.CanRedo())
	assert.Empty(t, h.Future)
	assert.Len(t, h.Past, 2)
}

func TestNonUndoableActionReplacesPresentOnly(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, addTask("b"))
	h = r.Reduce(h, action.Undo{})
	past, future := h.Past, h.Future

	next := r.Reduce(h, action.SetView{View: model.ViewHabits})
	require.NotSame(t, h, next)
	assert.Equal(t, model.ViewHabits, next.Present.View)
	assert.Equal(t, past, next.Past)
	assert.Equal(t, future, next.Future)

	next = r.Reduce(next, action.StartTimer{})
	next = r.Reduce(next, action.Tick{})
	assert.Len(t, next.Past, 1)
	assert.True(t, next.CanRedo())
}

func TestLoadStateClearsStacks(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, addTask("b"))
	h = r.Reduce(h, action.Undo{})

	loaded := model.NewAppState()
	loaded.Tasks = []model.Task{{ID: "x", Title: "x", CreatedAt: time.Now()}}
	h = r.Reduce(h, action.LoadState{State: loaded})
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "x", h.Present.Tasks[0].ID)
}

func TestClearHistoryKeepsPresent(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	present := h.Present

	h = r.Reduce(h, action.ClearHistory{})
	assert.Same(t, present, h.Present)
	assert.False(t, h.CanUndo())
}

func TestLimitDropsOldestEntries(t *testing.T) {
	t.Parallel()

	r := newReducer(history.WithLimit(2))
	h := start()
	for i := 0; i < 4; i++ {
		h = r.Reduce(h, addTask(fmt.Sprintf("t%d", i)))
	}
	require.Len(t, h.Past, 2)
	assert.Len(t, h.Past[0].Tasks, 2)

	h = r.Reduce(h, action.Undo{})
	h = r.Reduce(h, action.Undo{})
	assert.Same(t, h, r.Reduce(h, action.Undo{}))
	assert.Len(t, h.Present.Tasks, 2)
}

func TestCustomAllowList(t *testing.T) {
	t.Parallel()

	r := newReducer(history.WithUndoable(action.TypeSetView))
	assert.True(t, r.IsUndoable(action.TypeSetView))
	assert.False(t, r.IsUndoable(action.TypeAddTask))

	h := r.Reduce(start(), addTask("a"))
	assert.False(t, h.CanUndo())
	h = r.Reduce(h, action.SetView{View: model.ViewBoard})
	assert.True(t, h.CanUndo())
}

func TestUndoDoesNotAliasPastAcrossBranches(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, addTask("b"))
	h = r.Reduce(h, addTask("c"))
	undone := r.Reduce(h, action.Undo{})

	branch := r.Reduce(undone, addTask("d"))
	assert.Len(t, h.Past, 3)
	assert.Same(t, h.Past[2], undone.Present)
	assert.NotSame(t, h.Present, branch.Past[2])
}

func TestUndoKeepsUnlockedAchievements(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, action.ToggleTask{ID: "a"})
	h = r.Reduce(h, action.UnlockAchievement{ID: "first_task"})
	require.True(t, h.Present.IsUnlocked("first_task"))

	h = r.Reduce(h, action.Undo{})
	task, _, ok := h.Present.TaskByID("a")
	require.True(t, ok)
	assert.False(t, task.Completed)
	assert.True(t, h.Present.IsUnlocked("first_task"), "undo must not revoke an achievement")

	h = r.Reduce(h, action.Redo{})
	assert.Equal(t, []string{"first_task"}, h.Present.UnlockedAchievements)
}

func TestUndoKeepsTimerAndFocusTime(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, action.SetFocusTask{TaskID: "a"})
	h = r.Reduce(h, action.StartTimer{})
	for i := 0; i < 3; i++ {
		h = r.Reduce(h, action.Tick{})
	}
	h = r.Reduce(h, addTask("b"))
	h = r.Reduce(h, action.Tick{})
	h = r.Reduce(h, action.Tick{})
	timer := h.Present.Pomodoro

	h = r.Reduce(h, action.Undo{})
	_, _, hasB := h.Present.TaskByID("b")
	assert.False(t, hasB)
	a, _, ok := h.Present.TaskByID("a")
	require.True(t, ok)
	assert.Equal(t, 5, a.TotalFocusTime)
	assert.True(t, h.Present.Pomodoro.IsActive)
	assert.Equal(t, timer.RemainingTime, h.Present.Pomodoro.RemainingTime)
	assert.Equal(t, "a", h.Present.Pomodoro.FocusedTaskID)

	h = r.Reduce(h, action.Tick{})
	h = r.Reduce(h, action.Redo{})
	_, _, hasB = h.Present.TaskByID("b")
	assert.True(t, hasB)
	a, _, _ = h.Present.TaskByID("a")
	assert.Equal(t, 6, a.TotalFocusTime)
	assert.Equal(t, timer.RemainingTime-1, h.Present.Pomodoro.RemainingTime)
}

func TestUndoClearsFocusOnRemovedTask(t *testing.T) {
	t.Parallel()

	r := newReducer()
	h := r.Reduce(start(), addTask("a"))
	h = r.Reduce(h, action.SetFocusTask{TaskID: "a"})

	h = r.Reduce(h, action.Undo{})
	assert.Empty(t, h.Present.Tasks)
	assert.Empty(t, h.Present.Pomodoro.FocusedTaskID)
}
