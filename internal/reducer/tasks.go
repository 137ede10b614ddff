package reducer

import (
	"reflect"
	"strings"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// prepareTask normalizes tags and re-establishes the completion invariant.
func (r *Reducer) prepareTask(t model.Task) model.Task {
	t.Tags = model.NormalizeTags(t.Tags)
	if t.ListID == "" {
		t.ListID = model.DefaultListID
	}
	if t.Subtasks == nil {
		t.Subtasks = []model.Subtask{}
	}
	if t.Comments == nil {
		t.Comments = []model.Comment{}
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.now()
	}
	switch {
	case t.Completed && t.CompletedAt == nil:
		now := r.now()
		t.CompletedAt = &now
	case !t.Completed:
		t.CompletedAt = nil
	}
	return t
}

func (r *Reducer) addTask(s *model.AppState, t model.Task) *model.AppState {
	if strings.TrimSpace(t.ID) == "" {
		return s
	}
	if _, _, ok := s.TaskByID(t.ID); ok {
		return s
	}
	t = r.prepareTask(t)
	next := s.Clone()
	next.Tasks = appendCopy(s.Tasks, t)
	next.Tags = unionTags(s.Tags, t.Tags)
	return next
}

func (r *Reducer) updateTask(s *model.AppState, t model.Task) *model.AppState {
	old, i, ok := s.TaskByID(t.ID)
	if !ok {
		return s
	}
	if t.Completed && old.Completed && t.CompletedAt == nil {
		t.CompletedAt = old.CompletedAt
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = old.CreatedAt
	}
	t = r.prepareTask(t)
	if reflect.DeepEqual(old, t) {
		return s
	}
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	next.Tags = unionTags(s.Tags, t.Tags)
	return next
}

func deleteTask(s *model.AppState, id string) *model.AppState {
	tasks := removeWhere(s.Tasks, func(t model.Task) bool { return t.ID == id })
	if len(tasks) == len(s.Tasks) {
		return s
	}
	next := s.Clone()
	next.Tasks = tasks
	if next.SelectedTaskID == id {
		next.SelectedTaskID = ""
	}
	if next.Pomodoro.FocusedTaskID == id {
		next.Pomodoro.FocusedTaskID = ""
	}
	return next
}

// toggleTask flips completion. Completing a recurring task splits it into a
// completed occurrence and the live task advanced to its next due date.
// Completed occurrences cannot be reopened.
func (r *Reducer) toggleTask(s *model.AppState, id string) *model.AppState {
	t, i, ok := s.TaskByID(id)
	if !ok {
		return s
	}
	now := r.now()

	if t.Completed {
		if t.IsOccurrence() {
			return s
		}
		t.Completed = false
		t.CompletedAt = nil
		next := s.Clone()
		next.Tasks = replaceAt(s.Tasks, i, t)
		return next
	}

	if t.IsRecurring() {
		if split, ok := splitRecurring(s.Tasks, i, now); ok {
			if split == nil {
				return s
			}
			next := s.Clone()
			next.Tasks = split
			return next
		}
	}

	t.Completed = true
	t.CompletedAt = &now
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}

// splitRecurring returns the tasks with the occurrence inserted after the
// live task. ok is false when the rule yields no next date. A nil slice with
// ok set means the occurrence for this date already exists and nothing
// changes.
func splitRecurring(tasks []model.Task, i int, now time.Time) ([]model.Task, bool) {
	live := tasks[i]
	base := now
	if live.DueDate != nil {
		base = *live.DueDate
	}
	nextDue, err := live.Recurrence.Next(base)
	if err != nil {
		return nil, false
	}

	occurrenceID := model.OccurrenceID(live.ID, base)
	for _, t := range tasks {
		if t.ID == occurrenceID {
			return nil, true
		}
	}

	done := live
	done.ID = occurrenceID
	done.Completed = true
	done.CompletedAt = &now
	done.DueDate = &base
	done.Recurrence = model.RecurrenceNone
	done.ReminderMinutes = nil
	done.Occurrence = &model.OccurrenceRef{TaskID: live.ID, Date: model.DateKey(base)}

	live.DueDate = &nextDue
	live.Completed = false
	live.CompletedAt = nil

	out := make([]model.Task, 0, len(tasks)+1)
	for j, t := range tasks {
		if j == i {
			out = append(out, live, done)
			continue
		}
		out = append(out, t)
	}
	return out, true
}

// moveTask places a task in another list. A column that does not belong to
// the target list is dropped.
func moveTask(s *model.AppState, id, listID, columnID string) *model.AppState {
	t, i, ok := s.TaskByID(id)
	if !ok {
		return s
	}
	if _, ok := s.ListByID(listID); !ok {
		return s
	}
	if columnID != "" {
		if c, ok := s.ColumnByID(columnID); !ok || c.ListID != listID {
			columnID = ""
		}
	}
	if t.ListID == listID && t.ColumnID == columnID {
		return s
	}
	t.ListID = listID
	t.ColumnID = columnID
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}

// reorderTasks moves the dragged task to the target's position. Both must
// belong to the same list.
func reorderTasks(s *model.AppState, draggedID, targetID string) *model.AppState {
	if draggedID == targetID {
		return s
	}
	dragged, from, ok := s.TaskByID(draggedID)
	if !ok {
		return s
	}
	target, to, ok := s.TaskByID(targetID)
	if !ok || dragged.ListID != target.ListID {
		return s
	}
	next := s.Clone()
	next.Tasks = moveTo(s.Tasks, from, to)
	return next
}

func addSubtask(s *model.AppState, taskID string, sub model.Subtask) *model.AppState {
	t, i, ok := s.TaskByID(taskID)
	if !ok || strings.TrimSpace(sub.ID) == "" {
		return s
	}
	for _, existing := range t.Subtasks {
		if existing.ID == sub.ID {
			return s
		}
	}
	t.Subtasks = appendCopy(t.Subtasks, sub)
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}

func toggleSubtask(s *model.AppState, taskID, subtaskID string) *model.AppState {
	t, i, ok := s.TaskByID(taskID)
	if !ok {
		return s
	}
	for j, sub := range t.Subtasks {
		if sub.ID != subtaskID {
			continue
		}
		sub.Completed = !sub.Completed
		t.Subtasks = replaceAt(t.Subtasks, j, sub)
		next := s.Clone()
		next.Tasks = replaceAt(s.Tasks, i, t)
		return next
	}
	return s
}

func deleteSubtask(s *model.AppState, taskID, subtaskID string) *model.AppState {
	t, i, ok := s.TaskByID(taskID)
	if !ok {
		return s
	}
	subs := removeWhere(t.Subtasks, func(sub model.Subtask) bool { return sub.ID == subtaskID })
	if len(subs) == len(t.Subtasks) {
		return s
	}
	t.Subtasks = subs
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}

func (r *Reducer) addComment(s *model.AppState, taskID string, c model.Comment) *model.AppState {
	t, i, ok := s.TaskByID(taskID)
	if !ok || strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Content) == "" {
		return s
	}
	for _, existing := range t.Comments {
		if existing.ID == c.ID {
			return s
		}
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	t.Comments = appendCopy(t.Comments, c)
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}

func assignTask(s *model.AppState, taskID, userID string) *model.AppState {
	t, i, ok := s.TaskByID(taskID)
	if !ok || t.AssigneeID == userID {
		return s
	}
	t.AssigneeID = userID
	next := s.Clone()
	next.Tasks = replaceAt(s.Tasks, i, t)
	return next
}
