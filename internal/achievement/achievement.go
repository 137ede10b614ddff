// Package achievement evaluates the fixed set of achievements against the
// application state.
package achievement

import (
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

type Definition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Check       func(s *model.AppState, now time.Time) bool
}

// Definitions returns every achievement in display and evaluation order.
func Definitions() []Definition {
	return []Definition{
		{
			ID: "first_task", Title: "First Step", Icon: "*",
			Description: "Complete your first task",
			Check:       completedAtLeast(1),
		},
		{
			ID: "task_10", Title: "Getting Things Done", Icon: "**",
			Description: "Complete 10 tasks",
			Check:       completedAtLeast(10),
		},
		{
			ID: "task_100", Title: "Centurion", Icon: "***",
			Description: "Complete 100 tasks",
			Check:       completedAtLeast(100),
		},
		{
			ID: "early_bird", Title: "Early Bird", Icon: "^",
			Description: "Complete a task before 8 AM",
			Check: func(s *model.AppState, _ time.Time) bool {
				for _, t := range s.Tasks {
					if t.Completed && t.CompletedAt != nil && t.CompletedAt.Hour() < 8 {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "focus_first", Title: "In the Zone", Icon: "o",
			Description: "Finish a focus session",
			Check: func(s *model.AppState, _ time.Time) bool {
				return len(s.Pomodoro.FocusHistory) > 0
			},
		},
		{
			ID: "focus_10h", Title: "Deep Worker", Icon: "O",
			Description: "Accumulate 10 hours of focus",
			Check: func(s *model.AppState, _ time.Time) bool {
				return s.Pomodoro.TotalFocusSeconds() >= 10*60*60
			},
		},
		{
			ID: "habit_streak_7", Title: "Week Warrior", Icon: "~",
			Description: "Keep a habit for 7 days in a row",
			Check:       streakAtLeast(7),
		},
		{
			ID: "habit_streak_30", Title: "Habit Master", Icon: "~~",
			Description: "Keep a habit for 30 days in a row",
			Check:       streakAtLeast(30),
		},
		{
			ID: "list_maker", Title: "Organizer", Icon: "#",
			Description: "Create 5 lists",
			Check: func(s *model.AppState, _ time.Time) bool {
				return len(s.Lists) >= 5
			},
		},
		{
			ID: "tag_master", Title: "Tag Master", Icon: "@",
			Description: "Use 10 different tags",
			Check: func(s *model.AppState, _ time.Time) bool {
				return len(s.Tags) >= 10
			},
		},
		{
			ID: "countdown_first", Title: "Looking Forward", Icon: ">",
			Description: "Add a countdown",
			Check: func(s *model.AppState, _ time.Time) bool {
				return len(s.Countdowns) > 0
			},
		},
		{
			ID: "inbox_zero", Title: "Inbox Zero", Icon: "0",
			Description: "Have tasks and none left open",
			Check: func(s *model.AppState, _ time.Time) bool {
				if len(s.Tasks) == 0 {
					return false
				}
				for _, t := range s.Tasks {
					if !t.Completed {
						return false
					}
				}
				return true
			},
		},
	}
}

func completedAtLeast(n int) func(*model.AppState, time.Time) bool {
	return func(s *model.AppState, _ time.Time) bool {
		return s.CompletedTaskCount() >= n
	}
}

func streakAtLeast(n int) func(*model.AppState, time.Time) bool {
	return func(s *model.AppState, now time.Time) bool {
		for _, h := range s.Habits {
			if h.Streak(now) >= n {
				return true
			}
		}
		return false
	}
}

// Lookup finds a definition by id.
func Lookup(id string) (Definition, bool) {
	for _, d := range Definitions() {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Evaluate returns, in definition order, the achievements whose predicate
// holds on s but which are not yet unlocked.
func Evaluate(defs []Definition, s *model.AppState, now time.Time) []Definition {
	out := make([]Definition, 0)
	for _, d := range defs {
		if s.IsUnlocked(d.ID) {
			continue
		}
		if d.Check(s, now) {
			out = append(out, d)
		}
	}
	return out
}
