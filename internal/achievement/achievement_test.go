package achievement_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskflow/internal/achievement"
	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
	"github.com/sandeepkv93/taskflow/internal/reducer"
)

var now = time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)

func completedTask(id string, at time.Time) model.Task {
	return model.Task{ID: id, Title: id, Completed: true, CompletedAt: &at, CreatedAt: at}
}

func ids(defs []achievement.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

func TestDefinitionsHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, d := range achievement.Definitions() {
		require.NotEmpty(t, d.ID)
		require.NotNil(t, d.Check, d.ID)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
	_, ok := achievement.Lookup("first_task")
	assert.True(t, ok)
}

func TestEvaluateInDefinitionOrder(t *testing.T) {
	t.Parallel()

	s := model.NewAppState()
	s.Tasks = []model.Task{completedTask("a", now.Add(-4*time.Hour))}
	s.Countdowns = []model.CountdownEvent{{ID: "c", Name: "Trip", TargetDate: now}}

	got := achievement.Evaluate(achievement.Definitions(), s, now)
	assert.Equal(t, []string{"first_task", "early_bird", "countdown_first", "inbox_zero"}, ids(got))

	s.UnlockedAchievements = []string{"first_task", "inbox_zero"}
	got = achievement.Evaluate(achievement.Definitions(), s, now)
	assert.Equal(t, []string{"early_bird", "countdown_first"}, ids(got))
}

func TestHabitStreakAchievements(t *testing.T) {
	t.Parallel()

	var completions []string
	for i := 0; i < 30; i++ {
		completions = append(completions, model.DateKey(now.AddDate(0, 0, -i)))
	}
	s := model.NewAppState()
	s.Habits = []model.Habit{{ID: "h", Name: "Read", Completions: completions[:7]}}
	assert.Equal(t, []string{"habit_streak_7"}, ids(achievement.Evaluate(achievement.Definitions(), s, now)))

	s.Habits[0].Completions = completions
	assert.Equal(t, []string{"habit_streak_7", "habit_streak_30"}, ids(achievement.Evaluate(achievement.Definitions(), s, now)))

	// A streak that ended three days ago no longer counts.
	assert.Empty(t, achievement.Evaluate(achievement.Definitions(), s, now.AddDate(0, 0, 3)))
}

func TestObserverUnlocksOnceAndNotifies(t *testing.T) {
	t.Parallel()

	r := reducer.New(reducer.WithClock(clockwork.NewFakeClockAt(now)))
	state := model.NewAppState()
	var dispatched []action.Action
	dispatch := func(a action.Action) {
		dispatched = append(dispatched, a)
		state = r.Reduce(state, a)
	}
	rec := notify.NewRecorder(10)
	obs := achievement.NewObserver(dispatch, rec, clockwork.NewFakeClockAt(now))

	prev := state
	state = r.Reduce(state, action.AddTask{Task: model.Task{ID: "a", Title: "A"}})
	state = r.Reduce(state, action.AddTask{Task: model.Task{ID: "b", Title: "B"}})
	state = r.Reduce(state, action.ToggleTask{ID: "a"})
	obs.OnChange(prev, state, action.ToggleTask{ID: "a"})
	obs.OnChange(prev, state, action.ToggleTask{ID: "a"})

	require.Len(t, dispatched, 1)
	assert.Equal(t, action.UnlockAchievement{ID: "first_task"}, dispatched[0])
	assert.Equal(t, []string{"first_task"}, state.UnlockedAchievements)
	require.Len(t, rec.All(), 1)
	assert.Equal(t, notify.LevelSuccess, rec.All()[0].Level)
}

func TestUnlockSurvivesFalsePredicate(t *testing.T) {
	t.Parallel()

	r := reducer.New(reducer.WithClock(clockwork.NewFakeClockAt(now)))
	state := model.NewAppState()
	obs := achievement.NewObserver(func(a action.Action) { state = r.Reduce(state, a) }, nil, clockwork.NewFakeClockAt(now))

	state = r.Reduce(state, action.AddTask{Task: model.Task{ID: "a", Title: "A", Completed: true}})
	obs.OnChange(nil, state, nil)
	require.Contains(t, state.UnlockedAchievements, "first_task")

	state = r.Reduce(state, action.DeleteTask{ID: "a"})
	obs.OnChange(nil, state, nil)
	assert.Contains(t, state.UnlockedAchievements, "first_task")
}
