package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateKey formats t as a calendar date in its own location.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateKey parses a YYYY-MM-DD key as midnight UTC.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Completions []string  `json:"completions"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("model: habit name is required")
	}
	return nil
}

func (h Habit) CompletedOn(date string) bool {
	for _, c := range h.Completions {
		if c == date {
			return true
		}
	}
	return false
}

func (h Habit) Streak(today time.Time) int {
	return Streak(h.Completions, today)
}

// Streak counts consecutive completion days ending today or yesterday.
// Unparseable entries are ignored.
func Streak(completions []string, today time.Time) int {
	seen := make(map[string]bool, len(completions))
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		d, err := ParseDateKey(c)
		if err != nil {
			continue
		}
		key := DateKey(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	todayKey := DateKey(today)
	yesterdayKey := DateKey(today.AddDate(0, 0, -1))
	latest := DateKey(days[0])
	if latest != todayKey && latest != yesterdayKey {
		return 0
	}

	streak := 1
	prev := days[0]
	for _, d := range days[1:] {
		if !d.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = d
	}
	return streak
}

type CountdownEvent struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TargetDate time.Time `json:"targetDate"`
}

func (c CountdownEvent) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: countdown id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: countdown name is required")
	}
	if c.TargetDate.IsZero() {
		return errors.New("model: countdown target_date is required")
	}
	return nil
}

// DaysUntil counts calendar days from now to the target; negative once past.
func (c CountdownEvent) DaysUntil(now time.Time) int {
	from, _ := ParseDateKey(DateKey(now))
	to, _ := ParseDateKey(DateKey(c.TargetDate.In(now.Location())))
	return int(to.Sub(from).Hours() / 24)
}
