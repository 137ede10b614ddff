// Package seed builds the sample workspace used when no stored state exists.
package seed

import (
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

const (
	ListWork     = "work"
	ListPersonal = "personal"
)

// Generate returns the same workspace for the same now: a few lists with
// board columns, tasks spread over priorities and due dates, habits with
// recent completions and two countdowns.
func Generate(now time.Time) *model.AppState {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(days, hour int) *time.Time {
		t := day.AddDate(0, 0, days).Add(time.Duration(hour) * time.Hour)
		return &t
	}
	minutes := func(m int) *int { return &m }
	created := day.AddDate(0, 0, -7).Add(9 * time.Hour)

	s := model.NewAppState()
	s.Lists = []model.List{
		{ID: model.DefaultListID, Name: "Inbox", Color: "#7aa2f7", Members: []string{}},
		{ID: ListWork, Name: "Work", Color: "#e0af68", Members: []string{}},
		{ID: ListPersonal, Name: "Personal", Color: "#9ece6a", Members: []string{}},
	}
	for _, l := range s.Lists {
		s.Columns = append(s.Columns,
			model.Column{ID: l.ID + "-todo", Name: "To Do", ListID: l.ID},
			model.Column{ID: l.ID + "-doing", Name: "In Progress", ListID: l.ID},
			model.Column{ID: l.ID + "-done", Name: "Done", ListID: l.ID},
		)
	}

	doneAt := day.AddDate(0, 0, -1).Add(17 * time.Hour)
	s.Tasks = []model.Task{
		{
			ID:          "seed-standup",
			Title:       "Daily standup",
			Description: "Share **blockers** and plan the day.",
			DueDate:     at(0, 9),
			Priority:    model.PriorityMedium,
			ListID:      ListWork,
			ColumnID:    ListWork + "-todo",
			Tags:        []string{"team"},
			Recurrence:  model.RecurrenceDaily,
		},
		{
			ID:              "seed-review",
			Title:           "Review pull request",
			Description:     "Check tests and architecture changes.",
			DueDate:         at(0, 15),
			Priority:        model.PriorityHigh,
			ListID:          ListWork,
			ColumnID:        ListWork + "-doing",
			Tags:            []string{"code"},
			ReminderMinutes: minutes(30),
			Subtasks: []model.Subtask{
				{ID: "seed-review-1", Title: "Run the test suite", Completed: true},
				{ID: "seed-review-2", Title: "Read the migration"},
				{ID: "seed-review-3", Title: "Leave comments"},
			},
		},
		{
			ID:          "seed-taxes",
			Title:       "Submit tax documents",
			Description: "Overdue since yesterday evening.",
			DueDate:     at(-1, 18),
			Priority:    model.PriorityHigh,
			ListID:      ListPersonal,
			ColumnID:    ListPersonal + "-todo",
			Tags:        []string{"finance"},
		},
		{
			ID:       "seed-groceries",
			Title:    "Buy groceries",
			DueDate:  at(1, 18),
			Priority: model.PriorityLow,
			ListID:   ListPersonal,
			ColumnID: ListPersonal + "-todo",
			Tags:     []string{"errands"},
		},
		{
			ID:         "seed-weekly",
			Title:      "Plan next week",
			DueDate:    at(3, 16),
			Priority:   model.PriorityMedium,
			ListID:     model.DefaultListID,
			Recurrence: model.RecurrenceWeekly,
			Tags:       []string{"planning"},
		},
		{
			ID:       "seed-book",
			Title:    "Read a chapter",
			Priority: model.PriorityNone,
			ListID:   model.DefaultListID,
		},
		{
			ID:          "seed-schema",
			Title:       "Draft storage schema",
			Completed:   true,
			CompletedAt: &doneAt,
			Priority:    model.PriorityMedium,
			ListID:      ListWork,
			ColumnID:    ListWork + "-done",
			Tags:        []string{"code"},
		},
	}
	for i := range s.Tasks {
		t := &s.Tasks[i]
		t.CreatedAt = created.Add(time.Duration(i) * time.Minute)
		if t.Tags == nil {
			t.Tags = []string{}
		}
		if t.Subtasks == nil {
			t.Subtasks = []model.Subtask{}
		}
		t.Comments = []model.Comment{}
	}
	s.Tags = []string{"team", "code", "finance", "errands", "planning"}

	s.Habits = []model.Habit{
		{ID: "seed-habit-read", Name: "Read 20 minutes", Completions: lastDays(day, 1, 5), CreatedAt: created},
		{ID: "seed-habit-walk", Name: "Evening walk", Completions: lastDays(day, 0, 3), CreatedAt: created},
		{ID: "seed-habit-water", Name: "Drink water", Completions: []string{}, CreatedAt: created},
	}

	s.Countdowns = []model.CountdownEvent{
		{ID: "seed-countdown-launch", Name: "Product launch", TargetDate: day.AddDate(0, 0, 21)},
		{ID: "seed-countdown-trip", Name: "Summer trip", TargetDate: day.AddDate(0, 2, 0)},
	}
	return s
}

// lastDays returns count date keys ending offset days before day.
func lastDays(day time.Time, offset, count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, model.DateKey(day.AddDate(0, 0, -(offset+i))))
	}
	return out
}
