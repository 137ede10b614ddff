package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/views"
)

func (m Model) handleFocusKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case " ":
		m.toggleTimer()
	case "r":
		m.dispatch(action.ResetTimer{})
		m.Status = StatusBar{Text: "timer reset"}
	case "c":
		m.dispatch(action.SetFocusTask{TaskID: ""})
		m.Status = StatusBar{Text: "focus task cleared"}
	}
	return m
}

// toggleTimer starts an idle timer, pauses a running one and resumes a
// paused one.
func (m *Model) toggleTimer() {
	p := m.state().Pomodoro
	switch {
	case !p.IsActive:
		m.dispatch(action.StartTimer{})
		m.Status = StatusBar{Text: "timer started"}
	case p.IsPaused:
		m.dispatch(action.ResumeTimer{})
		m.Status = StatusBar{Text: "timer resumed"}
	default:
		m.dispatch(action.PauseTimer{})
		m.Status = StatusBar{Text: "timer paused"}
	}
}

func (m Model) renderPomodoroView(s *model.AppState) string {
	p := s.Pomodoro
	total := p.Settings.Duration(p.CurrentSession)
	progress := 0.0
	if total > 0 {
		progress = float64(total-p.RemainingTime) / float64(total)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	title := ""
	if p.FocusedTaskID != "" {
		if t, _, ok := s.TaskByID(p.FocusedTaskID); ok {
			title = t.Title
		}
	}
	state := "idle"
	switch {
	case p.Running():
		state = "running"
	case p.IsActive && p.IsPaused:
		state = "paused"
	}

	return views.RenderPomodoroPanel(views.PomodoroPanelData{
		TaskTitle:    title,
		Session:      string(p.CurrentSession),
		State:        state,
		Timer:        formatDuration(p.RemainingTime),
		ProgressView: m.focusProgress.ViewAs(progress),
		ProgressPct:  int(progress * 100),
		Cycle:        p.CurrentCycle,
		Interval:     p.Settings.LongBreakInterval,
		Sessions:     len(p.FocusHistory),
		FocusMinutes: p.TotalFocusSeconds() / 60,
	})
}
