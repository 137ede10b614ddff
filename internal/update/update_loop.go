package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForChangeCmd(m.changes)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}

		keyStr := typed.String()
		if v, ok := m.viewForKey(keyStr); ok {
			m.switchView(v)
			return m, nil
		}
		switch keyStr {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.Undo:
			m.undo()
			return m, nil
		case m.Keys.Redo:
			m.redo()
			return m, nil
		case m.Keys.Timer:
			m.toggleTimer()
			return m, nil
		case m.Keys.Skip:
			m.dispatch(action.SkipSession{})
			m.Status = StatusBar{Text: "session skipped"}
			return m, nil
		case "esc":
			m.AskOutput = ""
			m.Status = StatusBar{}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.currentView() {
		case model.ViewTasks:
			return m.handleTasksKey(typed), nil
		case model.ViewBoard:
			return m.handleBoardKey(typed), nil
		case model.ViewCalendar:
			return m.handleCalendarKey(typed), nil
		case model.ViewHabits:
			return m.handleHabitsKey(typed), nil
		case model.ViewPomodoro:
			return m.handleFocusKey(typed), nil
		case model.ViewCountdowns:
			return m.handleCountdownsKey(typed), nil
		}
	case StateChangedMsg:
		m.clampCursors()
		return m, waitForChangeCmd(m.changes)
	case SwitchViewMsg:
		if typed.View.IsValid() {
			m.switchView(typed.View)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	s := m.state()
	view := m.currentView()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch view {
	case model.ViewTasks:
		leftPane = m.renderTasksView(s)
		rightPane = m.renderTaskDetailPane(s)
	case model.ViewBoard:
		leftPane = m.renderBoardView(s)
		rightPane = m.renderTaskDetailPane(s)
	case model.ViewCalendar:
		leftPane = m.renderCalendarView(s)
	case model.ViewHabits:
		leftPane = m.renderHabitsView(s)
	case model.ViewPomodoro:
		leftPane = m.renderPomodoroView(s)
	case model.ViewCountdowns:
		leftPane = m.renderCountdownsView(s)
	case model.ViewAchievements:
		leftPane = m.renderAchievementsView(s)
	}
	rightPane = joinSections(rightPane, m.renderCommandPalette(), m.AskOutput, m.renderHelpIfVisible())

	header := fmt.Sprintf("taskflow | view: %s | selected: %s", view, m.selectedTitle(s))
	if m.userName != "" {
		header += " | " + m.userName
	}
	if s.Pomodoro.Running() {
		header += fmt.Sprintf(" | %s %s", s.Pomodoro.CurrentSession, formatDuration(s.Pomodoro.RemainingTime))
	}

	return views.RenderApp(views.AppData{
		Header:       header,
		Tabs:         m.tabs(view),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: 1-7 views | %s cmd | %s undo | %s redo | %s timer | %s help | %s quit",
			m.Keys.Palette, m.Keys.Undo, m.Keys.Redo, m.Keys.Timer, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) viewForKey(k string) (model.View, bool) {
	switch k {
	case m.Keys.Tasks:
		return model.ViewTasks, true
	case m.Keys.Board:
		return model.ViewBoard, true
	case m.Keys.Calendar:
		return model.ViewCalendar, true
	case m.Keys.Habits:
		return model.ViewHabits, true
	case m.Keys.Pomodoro:
		return model.ViewPomodoro, true
	case m.Keys.Countdowns:
		return model.ViewCountdowns, true
	case m.Keys.Achievements:
		return model.ViewAchievements, true
	default:
		return "", false
	}
}

func (m *Model) switchView(v model.View) {
	if v == m.currentView() {
		return
	}
	m.dispatch(action.SetView{View: v})
	m.Cursor = 0
	m.BoardColumn = 0
	m.Calendar.Cursor = 0
}

func (m Model) tabs(current model.View) []views.Tab {
	order := []struct {
		key  string
		view model.View
	}{
		{m.Keys.Tasks, model.ViewTasks},
		{m.Keys.Board, model.ViewBoard},
		{m.Keys.Calendar, model.ViewCalendar},
		{m.Keys.Habits, model.ViewHabits},
		{m.Keys.Pomodoro, model.ViewPomodoro},
		{m.Keys.Countdowns, model.ViewCountdowns},
		{m.Keys.Achievements, model.ViewAchievements},
	}
	out := make([]views.Tab, 0, len(order))
	for _, o := range order {
		out = append(out, views.Tab{Key: o.key, Label: string(o.view), Active: o.view == current})
	}
	return out
}

func (m *Model) undo() {
	if m.store == nil || !m.store.CanUndo() {
		m.Status = StatusBar{Text: "nothing to undo"}
		return
	}
	m.dispatch(action.Undo{})
	m.clampCursors()
	m.Status = StatusBar{Text: "undone"}
}

func (m *Model) redo() {
	if m.store == nil || !m.store.CanRedo() {
		m.Status = StatusBar{Text: "nothing to redo"}
		return
	}
	m.dispatch(action.Redo{})
	m.clampCursors()
	m.Status = StatusBar{Text: "redone"}
}

func joinSections(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, "\n\n")
}
