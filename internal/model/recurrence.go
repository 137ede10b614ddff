package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRecurrence = errors.New("model: invalid recurrence")
	ErrNotRecurring      = errors.New("model: task is not recurring")
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// Next advances due by one interval. Monthly steps clamp to the last day of
// the target month, so Jan 31 is followed by Feb 28 (or 29).
func (r Recurrence) Next(due time.Time) (time.Time, error) {
	switch r {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1), nil
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7), nil
	case RecurrenceMonthly:
		return addMonthClamped(due, 1), nil
	case RecurrenceNone:
		return time.Time{}, ErrNotRecurring
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRecurrence, r)
	}
}

// Preview lists the next count due dates after from.
func (r Recurrence) Preview(from time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		return []time.Time{}, nil
	}
	out := make([]time.Time, 0, count)
	cursor := from
	for i := 0; i < count; i++ {
		next, err := r.Next(cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		cursor = next
	}
	return out, nil
}

func addMonthClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	last := lastDayOfMonth(first.Year(), first.Month(), t.Location())
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}
