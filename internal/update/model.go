package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/commands"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks        string
	Board        string
	Calendar     string
	Habits       string
	Pomodoro     string
	Countdowns   string
	Achievements string
	Palette      string
	Undo         string
	Redo         string
	Timer        string
	Skip         string
	Help         string
	Quit         string
}

func DefaultKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Tasks:        "1",
		Board:        "2",
		Calendar:     "3",
		Habits:       "4",
		Pomodoro:     "5",
		Countdowns:   "6",
		Achievements: "7",
		Palette:      "/",
		Undo:         "u",
		Redo:         "ctrl+r",
		Timer:        "p",
		Skip:         "s",
		Help:         "?",
		Quit:         "q",
	}
}

type CalendarMode string

const (
	CalendarModeDay   CalendarMode = "day"
	CalendarModeWeek  CalendarMode = "week"
	CalendarModeMonth CalendarMode = "month"
)

type AgendaItem struct {
	ID    string
	Title string
	Date  string
	Time  string
	Kind  string
}

type CalendarState struct {
	Mode      CalendarMode
	FocusDate time.Time
	Cursor    int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Options wires a Model to the running application.
type Options struct {
	Store    commands.Store
	Handlers commands.Handlers
	// Toasts holds notifications surfaced in the footer.
	Toasts  *notify.Recorder
	Changes *Changes
	Clock   clockwork.Clock
	// MarkdownStyle is the glamour style for descriptions and assistant
	// answers.
	MarkdownStyle string
	UserName      string
}

type Model struct {
	Cursor      int
	BoardColumn int
	Calendar    CalendarState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error
	// AskOutput is the rendered answer of the last ask command.
	AskOutput string

	store         commands.Store
	handlers      commands.Handlers
	toasts        *notify.Recorder
	changes       *Changes
	clock         clockwork.Clock
	markdownStyle string
	userName      string

	commandInput  textinput.Model
	focusProgress progress.Model
	helpModel     help.Model
	calendarTable table.Model
}

// StateChangedMsg reports that the store or a notifier has something new.
type StateChangedMsg struct{}

type SwitchViewMsg struct {
	View model.View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(opts Options) Model {
	m := Model{
		Keys:          DefaultKeys(),
		store:         opts.Store,
		handlers:      opts.Handlers,
		toasts:        opts.Toasts,
		changes:       opts.Changes,
		clock:         opts.Clock,
		markdownStyle: opts.MarkdownStyle,
		userName:      opts.UserName,
	}
	if m.clock == nil {
		m.clock = clockwork.NewRealClock()
	}
	if m.markdownStyle == "" {
		m.markdownStyle = "dark"
	}
	m.Calendar = CalendarState{
		Mode:      CalendarModeWeek,
		FocusDate: startOfDay(m.clock.Now()),
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 44
	m.commandInput.Placeholder = "add, done, focus start, ask ..."

	m.focusProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))

	m.helpModel = help.New()
	m.helpModel.ShowAll = true

	cols := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Time", Width: 7},
		{Title: "Kind", Width: 6},
		{Title: "Title", Width: 24},
	}
	m.calendarTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))
}

// state returns the store's present state, or an empty state when the model
// runs without a store.
func (m Model) state() *model.AppState {
	if m.store == nil {
		return model.NewAppState()
	}
	if s := m.store.State(); s != nil {
		return s
	}
	return model.NewAppState()
}

func (m Model) currentView() model.View {
	v := m.state().View
	if !v.IsValid() {
		return model.ViewTasks
	}
	return v
}

func (m Model) dispatch(a action.Action) {
	if m.store != nil {
		m.store.Dispatch(a)
	}
}
