package model

import (
	"errors"
	"testing"
	"time"
)

func TestRecurrenceDaily(t *testing.T) {
	due := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	next, err := RecurrenceDaily.Next(due)
	if err != nil {
		t.Fatalf("next daily failed: %v", err)
	}
	if next.Format("2006-01-02 15:04") != "2026-03-01 09:00" {
		t.Fatalf("unexpected next occurrence: %s", next.Format(time.RFC3339))
	}
}

func TestRecurrenceWeekly(t *testing.T) {
	due := time.Date(2026, 2, 9, 10, 30, 0, 0, time.UTC)
	next, err := RecurrenceWeekly.Next(due)
	if err != nil {
		t.Fatalf("next weekly failed: %v", err)
	}
	if next.Weekday() != time.Monday || next.Format("2006-01-02 15:04") != "2026-02-16 10:30" {
		t.Fatalf("unexpected next occurrence: %s", next.Format(time.RFC3339))
	}
}

func TestRecurrenceMonthlyClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		due  time.Time
		want string
	}{
		{time.Date(2026, 1, 31, 17, 0, 0, 0, time.UTC), "2026-02-28 17:00"},
		{time.Date(2028, 1, 31, 17, 0, 0, 0, time.UTC), "2028-02-29 17:00"},
		{time.Date(2026, 3, 31, 8, 0, 0, 0, time.UTC), "2026-04-30 08:00"},
		{time.Date(2026, 12, 15, 8, 0, 0, 0, time.UTC), "2027-01-15 08:00"},
	}
	for _, tc := range cases {
		next, err := RecurrenceMonthly.Next(tc.due)
		if err != nil {
			t.Fatalf("next monthly failed: %v", err)
		}
		if got := next.Format("2006-01-02 15:04"); got != tc.want {
			t.Fatalf("next(%s) = %s, want %s", tc.due.Format(time.RFC3339), got, tc.want)
		}
	}
}

func TestRecurrencePreview(t *testing.T) {
	from := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	got, err := RecurrenceMonthly.Preview(from, 3)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	want := []string{"2026-02-28", "2026-03-28", "2026-04-28"}
	if len(got) != len(want) {
		t.Fatalf("unexpected preview length: %d", len(got))
	}
	for i := range want {
		if DateKey(got[i]) != want[i] {
			t.Fatalf("preview[%d] = %s, want %s", i, DateKey(got[i]), want[i])
		}
	}
}

func TestRecurrenceInvalid(t *testing.T) {
	if _, err := RecurrenceNone.Next(time.Now()); !errors.Is(err, ErrNotRecurring) {
		t.Fatalf("expected ErrNotRecurring, got %v", err)
	}
	if _, err := Recurrence("yearly").Next(time.Now()); !errors.Is(err, ErrInvalidRecurrence) {
		t.Fatalf("expected ErrInvalidRecurrence, got %v", err)
	}
}
