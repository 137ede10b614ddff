package update

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
)

var sortCycle = []model.SortOrder{
	model.SortManual,
	model.SortDueDate,
	model.SortPriority,
	model.SortCreatedAt,
	model.SortTitle,
}

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	s := m.state()
	rows := taskRows(s)
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(rows)-1 {
			m.Cursor++
		}
	case " ":
		if t, ok := rowAt(rows, m.Cursor); ok {
			m.toggleTask(t)
		}
	case "enter":
		if t, ok := rowAt(rows, m.Cursor); ok {
			m.dispatch(action.SelectTask{ID: t.ID})
			m.Status = StatusBar{Text: fmt.Sprintf("selected: %s", t.Title)}
		}
	case "x":
		if t, ok := rowAt(rows, m.Cursor); ok {
			m.dispatch(action.DeleteTask{ID: t.ID})
			m.clampCursors()
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", t.Title)}
		}
	case "f":
		if t, ok := rowAt(rows, m.Cursor); ok {
			m.dispatch(action.SetFocusTask{TaskID: t.ID})
			m.switchView(model.ViewPomodoro)
			m.Status = StatusBar{Text: fmt.Sprintf("focusing on: %s", t.Title)}
		}
	case "o":
		next := nextSortOrder(s.SortOrder)
		m.dispatch(action.SetSortOrder{Order: next})
		m.Status = StatusBar{Text: fmt.Sprintf("sort: %s", next)}
	case "tab":
		m.cycleActiveList(s)
	}
	return m
}

func (m Model) handleBoardKey(msg tea.KeyMsg) Model {
	s := m.state()
	columns := boardColumns(s)
	if len(columns) == 0 {
		if msg.String() == "tab" {
			m.cycleActiveList(s)
		}
		return m
	}
	if m.BoardColumn >= len(columns) {
		m.BoardColumn = len(columns) - 1
	}
	lane := columns[m.BoardColumn].tasks
	switch msg.String() {
	case "left", "h":
		if m.BoardColumn > 0 {
			m.BoardColumn--
			m.Cursor = 0
		}
	case "right", "l":
		if m.BoardColumn < len(columns)-1 {
			m.BoardColumn++
			m.Cursor = 0
		}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(lane)-1 {
			m.Cursor++
		}
	case " ":
		if t, ok := rowAt(lane, m.Cursor); ok {
			m.toggleTask(t)
		}
	case "[", "]":
		t, ok := rowAt(lane, m.Cursor)
		if !ok {
			return m
		}
		target := m.BoardColumn - 1
		if msg.String() == "]" {
			target = m.BoardColumn + 1
		}
		if target < 0 || target >= len(columns) {
			return m
		}
		col := columns[target].column
		m.dispatch(action.MoveTask{ID: t.ID, ListID: col.ListID, ColumnID: col.ID})
		m.BoardColumn = target
		m.Cursor = indexOfTask(boardColumns(m.state())[target].tasks, t.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("moved %s to %s", t.Title, col.Name)}
	case "tab":
		m.cycleActiveList(s)
	}
	return m
}

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	habits := m.state().Habits
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(habits)-1 {
			m.Cursor++
		}
	case " ":
		if m.Cursor >= 0 && m.Cursor < len(habits) {
			h := habits[m.Cursor]
			m.dispatch(action.ToggleHabit{ID: h.ID, Date: model.DateKey(m.clock.Now())})
			m.Status = StatusBar{Text: fmt.Sprintf("habit toggled: %s", h.Name)}
		}
	case "x":
		if m.Cursor >= 0 && m.Cursor < len(habits) {
			h := habits[m.Cursor]
			m.dispatch(action.DeleteHabit{ID: h.ID})
			m.clampCursors()
			m.Status = StatusBar{Text: fmt.Sprintf("habit deleted: %s", h.Name)}
		}
	}
	return m
}

func (m Model) handleCountdownsKey(msg tea.KeyMsg) Model {
	events := sortedCountdowns(m.state())
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(events)-1 {
			m.Cursor++
		}
	case "x":
		if m.Cursor >= 0 && m.Cursor < len(events) {
			ev := events[m.Cursor]
			m.dispatch(action.DeleteCountdown{ID: ev.ID})
			m.clampCursors()
			m.Status = StatusBar{Text: fmt.Sprintf("countdown deleted: %s", ev.Name)}
		}
	}
	return m
}

func (m *Model) toggleTask(t model.Task) {
	before := m.state()
	m.dispatch(action.ToggleTask{ID: t.ID})
	if m.state() == before {
		m.Status = StatusBar{Text: fmt.Sprintf("unchanged: %s", t.Title)}
		return
	}
	if t.Completed {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", t.Title)}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", t.Title)}
}

func (m *Model) cycleActiveList(s *model.AppState) {
	if len(s.Lists) == 0 {
		return
	}
	next := s.Lists[0]
	for i, l := range s.Lists {
		if l.ID == s.ActiveListID && s.ActiveTag == "" {
			next = s.Lists[(i+1)%len(s.Lists)]
			break
		}
	}
	view := m.currentView()
	m.dispatch(action.SetActiveList{ID: next.ID})
	// Selecting a list jumps to the tasks view; stay on the board.
	if view != model.ViewTasks {
		m.dispatch(action.SetView{View: view})
	}
	m.Cursor = 0
	m.BoardColumn = 0
	m.Status = StatusBar{Text: fmt.Sprintf("list: %s", next.Name)}
}

// clampCursors keeps the cursors inside the rows of the current view after
// the state changed underneath them.
func (m *Model) clampCursors() {
	s := m.state()
	n := 0
	switch m.currentView() {
	case model.ViewTasks:
		n = len(taskRows(s))
	case model.ViewBoard:
		columns := boardColumns(s)
		if m.BoardColumn >= len(columns) {
			m.BoardColumn = max(len(columns)-1, 0)
		}
		if len(columns) > 0 {
			n = len(columns[m.BoardColumn].tasks)
		}
	case model.ViewHabits:
		n = len(s.Habits)
	case model.ViewCountdowns:
		n = len(s.Countdowns)
	case model.ViewCalendar:
		items := m.agendaItems(s)
		if m.Calendar.Cursor >= len(items) {
			m.Calendar.Cursor = max(len(items)-1, 0)
		}
	}
	if m.Cursor >= n {
		m.Cursor = max(n-1, 0)
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// cursorTask returns the task under the cursor in the tasks and board views.
func (m Model) cursorTask(s *model.AppState) (model.Task, bool) {
	switch m.currentView() {
	case model.ViewTasks:
		return rowAt(taskRows(s), m.Cursor)
	case model.ViewBoard:
		columns := boardColumns(s)
		if m.BoardColumn < 0 || m.BoardColumn >= len(columns) {
			return model.Task{}, false
		}
		return rowAt(columns[m.BoardColumn].tasks, m.Cursor)
	}
	return model.Task{}, false
}

func (m Model) selectedTitle(s *model.AppState) string {
	if s.SelectedTaskID == "" {
		return "-"
	}
	if t, _, ok := s.TaskByID(s.SelectedTaskID); ok {
		return t.Title
	}
	return "-"
}

// taskRows lists the visible tasks with open tasks ahead of completed ones,
// matching the rendered order.
func taskRows(s *model.AppState) []model.Task {
	visible := s.VisibleTasks()
	out := make([]model.Task, 0, len(visible))
	for _, t := range visible {
		if !t.Completed {
			out = append(out, t)
		}
	}
	for _, t := range visible {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

type boardColumn struct {
	column model.Column
	tasks  []model.Task
}

// boardColumns groups the active list's tasks by column. Tasks without a
// valid column land in the first one.
func boardColumns(s *model.AppState) []boardColumn {
	cols := s.ColumnsForList(s.ActiveListID)
	if len(cols) == 0 {
		return nil
	}
	out := make([]boardColumn, len(cols))
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		out[i] = boardColumn{column: c}
		index[c.ID] = i
	}
	for _, t := range s.Tasks {
		if t.ListID != s.ActiveListID {
			continue
		}
		i, ok := index[t.ColumnID]
		if !ok {
			i = 0
		}
		out[i].tasks = append(out[i].tasks, t)
	}
	return out
}

func sortedCountdowns(s *model.AppState) []model.CountdownEvent {
	out := make([]model.CountdownEvent, len(s.Countdowns))
	copy(out, s.Countdowns)
	sort.SliceStable(out, func(i, j int) bool { return out[i].TargetDate.Before(out[j].TargetDate) })
	return out
}

func rowAt(rows []model.Task, i int) (model.Task, bool) {
	if i < 0 || i >= len(rows) {
		return model.Task{}, false
	}
	return rows[i], true
}

func indexOfTask(rows []model.Task, id string) int {
	for i, t := range rows {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func nextSortOrder(current model.SortOrder) model.SortOrder {
	for i, o := range sortCycle {
		if o == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}
