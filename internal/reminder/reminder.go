package reminder

import (
	"sort"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// Due returns reminders whose trigger time has passed while the task is not
// yet due, ordered by trigger time.
func Due(tasks []model.Task, now time.Time) []model.Reminder {
	out := make([]model.Reminder, 0)
	for _, t := range tasks {
		r, err := model.ReminderFor(t)
		if err != nil {
			continue
		}
		if !r.TriggerAt.After(now) && now.Before(r.DueAt) {
			out = append(out, r)
		}
	}
	sortByTrigger(out)
	return out
}

// Upcoming returns reminders that trigger after now, ordered by trigger time.
func Upcoming(tasks []model.Task, now time.Time) []model.Reminder {
	out := make([]model.Reminder, 0)
	for _, t := range tasks {
		r, err := model.ReminderFor(t)
		if err != nil {
			continue
		}
		if r.TriggerAt.After(now) {
			out = append(out, r)
		}
	}
	sortByTrigger(out)
	return out
}

func sortByTrigger(rs []model.Reminder) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].TriggerAt.Before(rs[j].TriggerAt)
	})
}
