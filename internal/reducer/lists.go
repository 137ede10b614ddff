package reducer

import (
	"reflect"
	"slices"
	"strings"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// addList adds l and its columns. Columns without an id or already present
// are skipped; every column is bound to l.
func addList(s *model.AppState, l model.List, columns []model.Column) *model.AppState {
	if strings.TrimSpace(l.ID) == "" {
		return s
	}
	if _, ok := s.ListByID(l.ID); ok {
		return s
	}
	if l.Members == nil {
		l.Members = []string{}
	}
	next := s.Clone()
	next.Lists = appendCopy(s.Lists, l)
	for _, c := range columns {
		if strings.TrimSpace(c.ID) == "" {
			continue
		}
		if _, ok := next.ColumnByID(c.ID); ok {
			continue
		}
		c.ListID = l.ID
		next.Columns = appendCopy(next.Columns, c)
	}
	return next
}

func updateList(s *model.AppState, l model.List) *model.AppState {
	for i, old := range s.Lists {
		if old.ID != l.ID {
			continue
		}
		if l.Members == nil {
			l.Members = old.Members
		}
		if reflect.DeepEqual(old, l) {
			return s
		}
		next := s.Clone()
		next.Lists = replaceAt(s.Lists, i, l)
		return next
	}
	return s
}

// deleteList removes a list with its tasks and columns. The default list is
// permanent.
func deleteList(s *model.AppState, id string) *model.AppState {
	if id == model.DefaultListID {
		return s
	}
	if _, ok := s.ListByID(id); !ok {
		return s
	}
	next := s.Clone()
	next.Lists = removeWhere(s.Lists, func(l model.List) bool { return l.ID == id })
	next.Tasks = removeWhere(s.Tasks, func(t model.Task) bool { return t.ListID == id })
	next.Columns = removeWhere(s.Columns, func(c model.Column) bool { return c.ListID == id })
	if _, _, ok := next.TaskByID(next.SelectedTaskID); !ok {
		next.SelectedTaskID = ""
	}
	if _, _, ok := next.TaskByID(next.Pomodoro.FocusedTaskID); !ok {
		next.Pomodoro.FocusedTaskID = ""
	}
	if s.ActiveListID == id {
		next.ActiveListID = model.DefaultListID
		next.View = model.ViewTasks
	}
	return next
}

func addListMember(s *model.AppState, listID, userID string) *model.AppState {
	if strings.TrimSpace(userID) == "" {
		return s
	}
	for i, l := range s.Lists {
		if l.ID != listID {
			continue
		}
		if l.HasMember(userID) {
			return s
		}
		l.Members = appendCopy(l.Members, userID)
		next := s.Clone()
		next.Lists = replaceAt(s.Lists, i, l)
		return next
	}
	return s
}

func addColumn(s *model.AppState, c model.Column) *model.AppState {
	if strings.TrimSpace(c.ID) == "" {
		return s
	}
	if _, ok := s.ColumnByID(c.ID); ok {
		return s
	}
	if _, ok := s.ListByID(c.ListID); !ok {
		return s
	}
	next := s.Clone()
	next.Columns = appendCopy(s.Columns, c)
	return next
}

func renameColumn(s *model.AppState, id, name string) *model.AppState {
	name = strings.TrimSpace(name)
	if name == "" {
		return s
	}
	for i, c := range s.Columns {
		if c.ID != id {
			continue
		}
		if c.Name == name {
			return s
		}
		c.Name = name
		next := s.Clone()
		next.Columns = replaceAt(s.Columns, i, c)
		return next
	}
	return s
}

// deleteColumn removes a column and moves its tasks to the first remaining
// column of the same list, or leaves them without a column.
func deleteColumn(s *model.AppState, id string) *model.AppState {
	col, ok := s.ColumnByID(id)
	if !ok {
		return s
	}
	columns := removeWhere(s.Columns, func(c model.Column) bool { return c.ID == id })

	fallback := ""
	for _, c := range columns {
		if c.ListID == col.ListID {
			fallback = c.ID
			break
		}
	}

	var tasks []model.Task
	for i, t := range s.Tasks {
		if t.ColumnID != id {
			continue
		}
		if tasks == nil {
			tasks = slices.Clone(s.Tasks)
		}
		t.ColumnID = fallback
		tasks[i] = t
	}

	next := s.Clone()
	next.Columns = columns
	if tasks != nil {
		next.Tasks = tasks
	}
	return next
}

// reorderColumns moves the dragged column to the target's position within
// the same board.
func reorderColumns(s *model.AppState, draggedID, targetID string) *model.AppState {
	if draggedID == targetID {
		return s
	}
	from, to := -1, -1
	for i, c := range s.Columns {
		switch c.ID {
		case draggedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from < 0 || to < 0 || s.Columns[from].ListID != s.Columns[to].ListID {
		return s
	}
	next := s.Clone()
	next.Columns = moveTo(s.Columns, from, to)
	return next
}
