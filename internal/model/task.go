package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrTaskIDRequired  = errors.New("model: task id is required")
)

// Priority is ordered: PriorityNone < PriorityLow < PriorityMedium < PriorityHigh.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func (p Priority) IsValid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PriorityNone, nil
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// OccurrenceRef identifies the completed instance of a recurring task by the
// live task it was split from and the due date it covered.
type OccurrenceRef struct {
	TaskID string `json:"taskId"`
	Date   string `json:"date"`
}

// OccurrenceID is the id given to the completed instance of taskID due on date.
func OccurrenceID(taskID string, due time.Time) string {
	return taskID + "_" + DateKey(due)
}

type Task struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	Completed       bool           `json:"completed"`
	CompletedAt     *time.Time     `json:"completedAt,omitempty"`
	DueDate         *time.Time     `json:"dueDate,omitempty"`
	Priority        Priority       `json:"priority"`
	ListID          string         `json:"listId"`
	ColumnID        string         `json:"columnId,omitempty"`
	Tags            []string       `json:"tags"`
	Subtasks        []Subtask      `json:"subtasks"`
	CreatedAt       time.Time      `json:"createdAt"`
	TotalFocusTime  int            `json:"totalFocusTime"`
	Recurrence      Recurrence     `json:"recurrence,omitempty"`
	ReminderMinutes *int           `json:"reminderMinutes,omitempty"`
	AssigneeID      string         `json:"assigneeId,omitempty"`
	Comments        []Comment      `json:"comments"`
	Occurrence      *OccurrenceRef `json:"occurrence,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrTaskIDRequired
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.Priority)
	}
	if !t.Recurrence.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrence, t.Recurrence)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	return nil
}

func (t Task) IsRecurring() bool {
	return t.Recurrence != RecurrenceNone
}

func (t Task) IsOccurrence() bool {
	return t.Occurrence != nil
}

func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// SubtaskProgress returns completed and total subtask counts.
func (t Task) SubtaskProgress() (int, int) {
	done := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}
