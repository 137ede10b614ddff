package model

import (
	"errors"
	"testing"
	"time"
)

func TestReminderForTask(t *testing.T) {
	due := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	lead := 15
	task := Task{ID: "task-1", Title: "Call bank", DueDate: &due, ReminderMinutes: &lead}

	r, err := ReminderFor(task)
	if err != nil {
		t.Fatalf("expected reminder, got error: %v", err)
	}
	if !r.TriggerAt.Equal(due.Add(-15 * time.Minute)) {
		t.Fatalf("unexpected trigger time: %s", r.TriggerAt)
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
}

func TestReminderForSkipsIneligibleTasks(t *testing.T) {
	due := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	lead := 10
	cases := []Task{
		{ID: "no-due", ReminderMinutes: &lead},
		{ID: "no-lead", DueDate: &due},
		{ID: "done", DueDate: &due, ReminderMinutes: &lead, Completed: true},
	}
	for _, task := range cases {
		if _, err := ReminderFor(task); !errors.Is(err, ErrNoReminder) {
			t.Fatalf("task %s: expected ErrNoReminder, got %v", task.ID, err)
		}
	}
}

func TestReminderValidateRequiresTask(t *testing.T) {
	r := Reminder{TriggerAt: time.Now(), DueAt: time.Now().Add(time.Minute)}
	if err := r.Validate(); err == nil {
		t.Fatal("expected error for missing task id")
	}
}
