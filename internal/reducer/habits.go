package reducer

import (
	"strings"

	"github.com/sandeepkv93/taskflow/internal/model"
)

func (r *Reducer) addHabit(s *model.AppState, h model.Habit) *model.AppState {
	if strings.TrimSpace(h.ID) == "" {
		return s
	}
	if _, ok := s.HabitByID(h.ID); ok {
		return s
	}
	if h.Completions == nil {
		h.Completions = []string{}
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = r.now()
	}
	next := s.Clone()
	next.Habits = appendCopy(s.Habits, h)
	return next
}

func deleteHabit(s *model.AppState, id string) *model.AppState {
	habits := removeWhere(s.Habits, func(h model.Habit) bool { return h.ID == id })
	if len(habits) == len(s.Habits) {
		return s
	}
	next := s.Clone()
	next.Habits = habits
	return next
}

// toggleHabit adds date to the habit's completions, or removes it when
// already present.
func toggleHabit(s *model.AppState, id, date string) *model.AppState {
	d, err := model.ParseDateKey(date)
	if err != nil {
		return s
	}
	key := model.DateKey(d)
	for i, h := range s.Habits {
		if h.ID != id {
			continue
		}
		if h.CompletedOn(key) {
			h.Completions = removeWhere(h.Completions, func(c string) bool { return c == key })
		} else {
			h.Completions = appendCopy(h.Completions, key)
		}
		next := s.Clone()
		next.Habits = replaceAt(s.Habits, i, h)
		return next
	}
	return s
}

func addCountdown(s *model.AppState, ev model.CountdownEvent) *model.AppState {
	if strings.TrimSpace(ev.ID) == "" {
		return s
	}
	for _, existing := range s.Countdowns {
		if existing.ID == ev.ID {
			return s
		}
	}
	next := s.Clone()
	next.Countdowns = appendCopy(s.Countdowns, ev)
	return next
}

func deleteCountdown(s *model.AppState, id string) *model.AppState {
	events := removeWhere(s.Countdowns, func(ev model.CountdownEvent) bool { return ev.ID == id })
	if len(events) == len(s.Countdowns) {
		return s
	}
	next := s.Clone()
	next.Countdowns = events
	return next
}
