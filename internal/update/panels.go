package update

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/taskflow/internal/achievement"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/views"
)

const toastTTL = 8 * time.Second

func (m Model) renderTasksView(s *model.AppState) string {
	rows := taskRows(s)
	now := m.clock.Now()
	data := make([]views.TaskRowData, 0, len(rows))
	for _, t := range rows {
		data = append(data, taskRowData(t, now))
	}
	selected := ""
	if t, ok := rowAt(rows, m.Cursor); ok {
		selected = t.ID
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		Scope:      taskScope(s),
		Sort:       string(s.SortOrder),
		Rows:       data,
		SelectedID: selected,
	})
}

func (m Model) renderBoardView(s *model.AppState) string {
	now := m.clock.Now()
	columns := boardColumns(s)
	data := make([]views.BoardColumnData, 0, len(columns))
	for _, c := range columns {
		rows := make([]views.TaskRowData, 0, len(c.tasks))
		for _, t := range c.tasks {
			rows = append(rows, taskRowData(t, now))
		}
		data = append(data, views.BoardColumnData{Name: c.column.Name, Rows: rows})
	}
	selected := ""
	if t, ok := m.cursorTask(s); ok {
		selected = t.ID
	}
	listName := s.ActiveListID
	if l, ok := s.ListByID(s.ActiveListID); ok {
		listName = l.Name
	}
	return views.RenderBoardPanel(views.BoardPanelData{
		ListName:     listName,
		Columns:      data,
		ColumnCursor: m.BoardColumn,
		SelectedID:   selected,
	})
}

func (m Model) renderTaskDetailPane(s *model.AppState) string {
	t, ok := m.cursorTask(s)
	if !ok {
		return views.RenderTaskDetail(views.TaskDetailData{})
	}
	data := views.TaskDetailData{
		ID:           t.ID,
		Title:        t.Title,
		ListName:     t.ListID,
		Priority:     t.Priority.String(),
		Tags:         t.Tags,
		FocusMinutes: t.TotalFocusTime / 60,
		Comments:     len(t.Comments),
	}
	if l, ok := s.ListByID(t.ListID); ok {
		data.ListName = l.Name
	}
	if c, ok := s.ColumnByID(t.ColumnID); ok {
		data.Column = c.Name
	}
	if t.DueDate != nil {
		data.Due = t.DueDate.In(m.clock.Now().Location()).Format("2006-01-02 15:04")
	}
	if at, ok := t.ReminderAt(); ok {
		data.Reminder = at.In(m.clock.Now().Location()).Format("2006-01-02 15:04")
	}
	if t.IsRecurring() {
		data.Recurrence = string(t.Recurrence)
	}
	for _, st := range t.Subtasks {
		data.Subtasks = append(data.Subtasks, views.SubtaskRowData{Title: st.Title, Completed: st.Completed})
	}
	if t.Description != "" {
		data.DescriptionView = views.RenderMarkdown(t.Description, m.markdownStyle)
	}
	return views.RenderTaskDetail(data)
}

func (m Model) renderHabitsView(s *model.AppState) string {
	now := m.clock.Now()
	today := model.DateKey(now)
	rows := make([]views.HabitRowData, 0, len(s.Habits))
	for _, h := range s.Habits {
		rows = append(rows, views.HabitRowData{
			ID:        h.ID,
			Name:      h.Name,
			DoneToday: h.CompletedOn(today),
			Streak:    h.Streak(now),
			Week:      habitWeek(h, now),
		})
	}
	selected := ""
	if m.Cursor >= 0 && m.Cursor < len(s.Habits) {
		selected = s.Habits[m.Cursor].ID
	}
	return views.RenderHabitsPanel(views.HabitsPanelData{Today: today, Rows: rows, SelectedID: selected})
}

func (m Model) renderCountdownsView(s *model.AppState) string {
	now := m.clock.Now()
	events := sortedCountdowns(s)
	rows := make([]views.CountdownRowData, 0, len(events))
	for _, ev := range events {
		rows = append(rows, views.CountdownRowData{
			ID:   ev.ID,
			Name: ev.Name,
			Date: model.DateKey(ev.TargetDate.In(now.Location())),
			Days: ev.DaysUntil(now),
		})
	}
	selected := ""
	if m.Cursor >= 0 && m.Cursor < len(events) {
		selected = events[m.Cursor].ID
	}
	return views.RenderCountdownsPanel(views.CountdownsPanelData{Rows: rows, SelectedID: selected})
}

func (m Model) renderAchievementsView(s *model.AppState) string {
	defs := achievement.Definitions()
	rows := make([]views.AchievementRowData, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, views.AchievementRowData{
			Icon:        d.Icon,
			Title:       d.Title,
			Description: d.Description,
			Unlocked:    s.IsUnlocked(d.ID),
		})
	}
	return views.RenderAchievementsPanel(views.AchievementsPanelData{Rows: rows})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

// renderNotificationsView shows the latest notification while it is fresh.
func (m Model) renderNotificationsView() string {
	if m.toasts == nil {
		return ""
	}
	n, ok := m.toasts.Last()
	if !ok || m.clock.Since(n.At) > toastTTL {
		return ""
	}
	return views.RenderNotification(string(n.Level), n.Title, n.Body)
}

func taskRowData(t model.Task, now time.Time) views.TaskRowData {
	row := views.TaskRowData{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  t.Priority.String(),
		Tags:      t.Tags,
		Completed: t.Completed,
		Overdue:   t.IsOverdue(now),
		Recurring: t.IsRecurring(),
	}
	if t.DueDate != nil {
		row.Due = relativeDay(*t.DueDate, now)
	}
	if done, total := t.SubtaskProgress(); total > 0 {
		row.Subtasks = fmt.Sprintf("%d/%d", done, total)
	}
	return row
}

func taskScope(s *model.AppState) string {
	if s.ActiveTag != "" {
		return "#" + s.ActiveTag
	}
	if l, ok := s.ListByID(s.ActiveListID); ok {
		return l.Name
	}
	return "all"
}

// habitWeek renders the last seven days oldest first, one mark per day.
func habitWeek(h model.Habit, now time.Time) string {
	marks := make([]byte, 0, 7)
	for i := 6; i >= 0; i-- {
		if h.CompletedOn(model.DateKey(now.AddDate(0, 0, -i))) {
			marks = append(marks, '#')
		} else {
			marks = append(marks, '.')
		}
	}
	return string(marks)
}
