package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskRowData struct {
	ID        string
	Title     string
	Priority  string
	Due       string
	Tags      []string
	Subtasks  string
	Completed bool
	Overdue   bool
	Recurring bool
}

type TasksPanelData struct {
	Scope      string
	Sort       string
	Rows       []TaskRowData
	SelectedID string
}

type SubtaskRowData struct {
	Title     string
	Completed bool
}

type TaskDetailData struct {
	ID              string
	Title           string
	ListName        string
	Column          string
	Priority        string
	Due             string
	Reminder        string
	Recurrence      string
	Tags            []string
	Subtasks        []SubtaskRowData
	FocusMinutes    int
	Comments        int
	DescriptionView string
}

type BoardColumnData struct {
	Name string
	Rows []TaskRowData
}

type BoardPanelData struct {
	ListName     string
	Columns      []BoardColumnData
	ColumnCursor int
	SelectedID   string
}

type CalendarAgendaItemData struct {
	ID    string
	Title string
	Date  string
	Time  string
	Kind  string
}

type CalendarPanelData struct {
	Mode      string
	FocusDate string
	Range     string
	TableView string
	Items     []CalendarAgendaItemData
	Selected  *CalendarAgendaItemData
}

type HabitRowData struct {
	ID        string
	Name      string
	DoneToday bool
	Streak    int
	Week      string
}

type HabitsPanelData struct {
	Today      string
	Rows       []HabitRowData
	SelectedID string
}

type PomodoroPanelData struct {
	TaskTitle    string
	Session      string
	State        string
	Timer        string
	ProgressView string
	ProgressPct  int
	Cycle        int
	Interval     int
	Sessions     int
	FocusMinutes int
}

type CountdownRowData struct {
	ID   string
	Name string
	Date string
	Days int
}

type CountdownsPanelData struct {
	Rows       []CountdownRowData
	SelectedID string
}

type AchievementRowData struct {
	Icon        string
	Title       string
	Description string
	Unlocked    bool
}

type AchievementsPanelData struct {
	Rows []AchievementRowData
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

var (
	laneStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(16)
	selectedLaneStyle = laneStyle.BorderForeground(lipgloss.Color("12"))
)

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks: %s (sort: %s)\n", data.Scope, data.Sort))
	b.WriteString("actions: [j/k]move [space]toggle [enter]open [x]delete [f]focus [o]sort\n")
	open := make([]TaskRowData, 0, len(data.Rows))
	done := make([]TaskRowData, 0)
	for _, row := range data.Rows {
		if row.Completed {
			done = append(done, row)
			continue
		}
		open = append(open, row)
	}
	renderTaskSection(&b, "Open", open, data.SelectedID)
	renderTaskSection(&b, "Completed", done, data.SelectedID)
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(data TaskDetailData) string {
	if strings.TrimSpace(data.ID) == "" {
		return "details:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("title: %s\n", data.Title))
	b.WriteString(fmt.Sprintf("list: %s", data.ListName))
	if data.Column != "" {
		b.WriteString(fmt.Sprintf(" / %s", data.Column))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("priority: %s\n", data.Priority))
	if data.Due != "" {
		b.WriteString(fmt.Sprintf("due: %s\n", data.Due))
	}
	if data.Reminder != "" {
		b.WriteString(fmt.Sprintf("reminder: %s\n", data.Reminder))
	}
	if data.Recurrence != "" {
		b.WriteString(fmt.Sprintf("repeats: %s\n", data.Recurrence))
	}
	if len(data.Tags) > 0 {
		b.WriteString(fmt.Sprintf("tags: %s\n", strings.Join(data.Tags, ",")))
	}
	if data.FocusMinutes > 0 {
		b.WriteString(fmt.Sprintf("focused: %dm\n", data.FocusMinutes))
	}
	if data.Comments > 0 {
		b.WriteString(fmt.Sprintf("comments: %d\n", data.Comments))
	}
	if len(data.Subtasks) > 0 {
		b.WriteString("subtasks:\n")
		for _, s := range data.Subtasks {
			b.WriteString(fmt.Sprintf("  %s %s\n", checkbox(s.Completed), s.Title))
		}
	}
	if data.DescriptionView != "" {
		b.WriteString("\n" + data.DescriptionView)
	}
	return strings.TrimSpace(b.String())
}

func RenderBoardPanel(data BoardPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("board: %s\n", data.ListName))
	b.WriteString("actions: [h/l]column [j/k]move [space]toggle [[/]]shift task\n")
	if len(data.Columns) == 0 {
		b.WriteString("(no columns)")
		return b.String()
	}
	lanes := make([]string, 0, len(data.Columns))
	for i, col := range data.Columns {
		var lane strings.Builder
		lane.WriteString(fmt.Sprintf("%s (%d)\n", col.Name, len(col.Rows)))
		if len(col.Rows) == 0 {
			lane.WriteString("  -")
		}
		for _, row := range col.Rows {
			cursor := " "
			if row.ID == data.SelectedID {
				cursor = ">"
			}
			lane.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox(row.Completed), row.Title))
		}
		style := laneStyle
		if i == data.ColumnCursor {
			style = selectedLaneStyle
		}
		lanes = append(lanes, style.Render(strings.TrimRight(lane.String(), "\n")))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lanes...))
	return b.String()
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("mode: %s | focus: %s | %s\n", data.Mode, data.FocusDate, data.Range))
	b.WriteString("actions: [d]day [w]week [m]month [h/l]period [j/k]agenda [t]today\n")
	b.WriteString(data.TableView + "\n")

	grouped := make(map[string][]CalendarAgendaItemData)
	keys := make([]string, 0)
	for _, item := range data.Items {
		if _, ok := grouped[item.Date]; !ok {
			keys = append(keys, item.Date)
		}
		grouped[item.Date] = append(grouped[item.Date], item)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		b.WriteString("(agenda empty)")
		return b.String()
	}

	for _, day := range keys {
		b.WriteString(fmt.Sprintf("\n%s:\n", day))
		items := grouped[day]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Time < items[j].Time })
		for _, item := range items {
			cursor := " "
			if data.Selected != nil && data.Selected.ID == item.ID {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s [%s] %s %s\n", cursor, strings.ToUpper(item.Kind), item.Time, item.Title))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderHabitsPanel(data HabitsPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("habits: %s\n", data.Today))
	b.WriteString("actions: [j/k]move [space]toggle today [x]delete\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no habits)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %-20s %s streak:%d\n", cursor, checkbox(row.DoneToday), row.Name, row.Week, row.Streak))
	}
	return strings.TrimSpace(b.String())
}

func RenderPomodoroPanel(data PomodoroPanelData) string {
	var b strings.Builder
	b.WriteString("pomodoro:\n")
	if data.TaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.TaskTitle))
	} else {
		b.WriteString("task: (none selected)\n")
	}
	b.WriteString(fmt.Sprintf("session: %s (%s)\n", data.Session, data.State))
	b.WriteString(fmt.Sprintf("timer: %s\n", data.Timer))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("cycle: %d/%d\n", data.Cycle, data.Interval))
	b.WriteString(fmt.Sprintf("focus sessions: %d (%dm total)\n", data.Sessions, data.FocusMinutes))
	b.WriteString("actions: [space|p]start/pause [r]reset [s]skip")
	return b.String()
}

func RenderCountdownsPanel(data CountdownsPanelData) string {
	var b strings.Builder
	b.WriteString("countdowns:\n")
	b.WriteString("actions: [j/k]move [x]delete\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no countdowns)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", cursor, row.Date, daysLabel(row.Days), row.Name))
	}
	return strings.TrimSpace(b.String())
}

func RenderAchievementsPanel(data AchievementsPanelData) string {
	unlocked := 0
	for _, row := range data.Rows {
		if row.Unlocked {
			unlocked++
		}
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("achievements: %d/%d\n", unlocked, len(data.Rows)))
	for _, row := range data.Rows {
		icon := "?"
		if row.Unlocked {
			icon = row.Icon
		}
		b.WriteString(fmt.Sprintf("%s %-4s %s - %s\n", checkbox(row.Unlocked), icon, row.Title, row.Description))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command:\n" + inputView
}

func RenderNotification(level, title, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	if title == "" {
		return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
	}
	return fmt.Sprintf("notification: [%s] %s: %s", strings.ToUpper(level), title, body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskSection(b *strings.Builder, title string, rows []TaskRowData, selectedID string) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(rows) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, row := range rows {
		cursor := " "
		if selectedID == row.ID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s", cursor, checkbox(row.Completed), urgencyBadge(row), row.Title))
		if row.Recurring {
			b.WriteString(" (repeats)")
		}
		if row.Due != "" {
			b.WriteString(fmt.Sprintf(" due:%s", row.Due))
		}
		if row.Subtasks != "" {
			b.WriteString(fmt.Sprintf(" [%s]", row.Subtasks))
		}
		for _, tag := range row.Tags {
			b.WriteString(" #" + tag)
		}
		b.WriteString("\n")
	}
}

func urgencyBadge(row TaskRowData) string {
	if row.Completed {
		return "[DONE]"
	}
	if row.Overdue {
		return "[RED]"
	}
	if row.Priority == "high" {
		return "[YELLOW]"
	}
	return "[GREEN]"
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func daysLabel(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "in 1 day"
	case days > 1:
		return fmt.Sprintf("in %d days", days)
	case days == -1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
