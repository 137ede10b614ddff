package model

import (
	"errors"
	"strings"
	"time"
)

var ErrNoReminder = errors.New("model: task has no reminder")

// Reminder is a pending notification derived from a task's due date and
// reminder lead time.
type Reminder struct {
	TaskID    string
	Title     string
	TriggerAt time.Time
	DueAt     time.Time
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.TaskID) == "" {
		return errors.New("model: reminder task_id is required")
	}
	if r.TriggerAt.IsZero() {
		return errors.New("model: reminder trigger_time is required")
	}
	if r.TriggerAt.After(r.DueAt) {
		return errors.New("model: reminder trigger_time must not be after due time")
	}
	return nil
}

// ReminderFor builds the reminder of an incomplete task with both a due date
// and a non-negative lead time.
func ReminderFor(t Task) (Reminder, error) {
	if t.Completed || t.DueDate == nil || t.ReminderMinutes == nil || *t.ReminderMinutes < 0 {
		return Reminder{}, ErrNoReminder
	}
	due := *t.DueDate
	return Reminder{
		TaskID:    t.ID,
		Title:     t.Title,
		TriggerAt: due.Add(-time.Duration(*t.ReminderMinutes) * time.Minute),
		DueAt:     due,
	}, nil
}

// ReminderAt reports when the task's reminder triggers.
func (t Task) ReminderAt() (time.Time, bool) {
	r, err := ReminderFor(t)
	if err != nil {
		return time.Time{}, false
	}
	return r.TriggerAt, true
}
