package update

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "d":
		m.Calendar.Mode = CalendarModeDay
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "calendar mode: day"}
	case "w":
		m.Calendar.Mode = CalendarModeWeek
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "calendar mode: week"}
	case "m":
		m.Calendar.Mode = CalendarModeMonth
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "calendar mode: month"}
	case "h", "left":
		m.shiftCalendarFocus(-1)
	case "l", "right":
		m.shiftCalendarFocus(1)
	case "t":
		m.Calendar.FocusDate = startOfDay(m.clock.Now())
		m.Calendar.Cursor = 0
		m.Status = StatusBar{Text: "calendar focus: today"}
	case "up", "k":
		if m.Calendar.Cursor > 0 {
			m.Calendar.Cursor--
		}
	case "down", "j":
		if m.Calendar.Cursor < len(m.agendaItems(m.state()))-1 {
			m.Calendar.Cursor++
		}
	}
	return m
}

func (m *Model) shiftCalendarFocus(delta int) {
	switch m.Calendar.Mode {
	case CalendarModeDay:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, 0, delta)
	case CalendarModeMonth:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, delta, 0)
	default:
		m.Calendar.FocusDate = m.Calendar.FocusDate.AddDate(0, 0, 7*delta)
	}
	m.Calendar.Cursor = 0
	m.Status = StatusBar{Text: fmt.Sprintf("calendar focus: %s", model.DateKey(m.Calendar.FocusDate))}
}

// calendarRange returns the half-open window shown for the current mode.
// Weeks start on Monday.
func (m Model) calendarRange() (time.Time, time.Time) {
	focus := startOfDay(m.Calendar.FocusDate)
	switch m.Calendar.Mode {
	case CalendarModeDay:
		return focus, focus.AddDate(0, 0, 1)
	case CalendarModeMonth:
		start := time.Date(focus.Year(), focus.Month(), 1, 0, 0, 0, 0, focus.Location())
		return start, start.AddDate(0, 1, 0)
	default:
		offset := (int(focus.Weekday()) + 6) % 7
		start := focus.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	}
}

// agendaItems lists dated tasks and countdowns inside the calendar range,
// ordered by date then time.
func (m Model) agendaItems(s *model.AppState) []AgendaItem {
	start, end := m.calendarRange()
	loc := m.Calendar.FocusDate.Location()
	items := make([]AgendaItem, 0)
	for _, t := range s.Tasks {
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(loc)
		if due.Before(start) || !due.Before(end) {
			continue
		}
		kind := "task"
		if t.Completed {
			kind = "done"
		}
		items = append(items, AgendaItem{
			ID:    t.ID,
			Title: t.Title,
			Date:  model.DateKey(due),
			Time:  due.Format("15:04"),
			Kind:  kind,
		})
	}
	for _, c := range s.Countdowns {
		target := c.TargetDate.In(loc)
		if target.Before(start) || !target.Before(end) {
			continue
		}
		items = append(items, AgendaItem{
			ID:    c.ID,
			Title: c.Name,
			Date:  model.DateKey(target),
			Time:  "all-day",
			Kind:  "event",
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
	return items
}

func (m Model) renderCalendarView(s *model.AppState) string {
	items := m.agendaItems(s)
	rows := make([]table.Row, 0, len(items))
	data := make([]views.CalendarAgendaItemData, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{item.Date, item.Time, strings.ToUpper(item.Kind), item.Title})
		data = append(data, views.CalendarAgendaItemData{
			ID:    item.ID,
			Title: item.Title,
			Date:  item.Date,
			Time:  item.Time,
			Kind:  item.Kind,
		})
	}
	tbl := m.calendarTable
	tbl.SetRows(rows)
	var selected *views.CalendarAgendaItemData
	if m.Calendar.Cursor >= 0 && m.Calendar.Cursor < len(data) {
		tbl.SetCursor(m.Calendar.Cursor)
		selected = &data[m.Calendar.Cursor]
	}
	start, end := m.calendarRange()
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Mode:      string(m.Calendar.Mode),
		FocusDate: model.DateKey(m.Calendar.FocusDate),
		Range:     fmt.Sprintf("%s..%s", model.DateKey(start), model.DateKey(end.AddDate(0, 0, -1))),
		TableView: tbl.View(),
		Items:     data,
		Selected:  selected,
	})
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
