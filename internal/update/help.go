package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/taskflow/internal/commands"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	names := make([]string, 0, len(commands.Names()))
	for _, n := range commands.Names() {
		names = append(names, string(n))
	}
	plain = append(plain, "", "commands: "+strings.Join(names, ", "))
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.currentView()),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: toKeyBindings(m.globalBindings()),
			full:  [][]key.Binding{toKeyBindings(m.globalBindings())},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "1-7", Action: "switch view"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Undo, Action: "undo"},
		{Key: m.Keys.Redo, Action: "redo"},
		{Key: m.Keys.Timer, Action: "start/pause timer"},
		{Key: m.Keys.Skip, Action: "skip session"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.currentView() {
	case model.ViewTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle completion"},
			{Key: "enter", Action: "select task"},
			{Key: "x", Action: "delete task"},
			{Key: "f", Action: "focus on task"},
			{Key: "o", Action: "cycle sort order"},
			{Key: "tab", Action: "next list"},
		}
	case model.ViewBoard:
		return []KeyBinding{
			{Key: "h/l", Action: "move between columns"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "[/]", Action: "move task to previous/next column"},
			{Key: "space", Action: "toggle completion"},
			{Key: "tab", Action: "next list"},
		}
	case model.ViewCalendar:
		return []KeyBinding{
			{Key: "d/w/m", Action: "day/week/month mode"},
			{Key: "h/l", Action: "previous/next period"},
			{Key: "t", Action: "jump to today"},
			{Key: "j/k", Action: "move agenda cursor"},
		}
	case model.ViewHabits:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "space", Action: "toggle today"},
			{Key: "x", Action: "delete habit"},
		}
	case model.ViewPomodoro:
		return []KeyBinding{
			{Key: "space", Action: "start/pause timer"},
			{Key: "r", Action: "reset timer"},
			{Key: "c", Action: "clear focus task"},
		}
	case model.ViewCountdowns:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "x", Action: "delete countdown"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func toKeyBindings(kbs []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(kbs))
	for _, kb := range kbs {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
