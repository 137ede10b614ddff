// Package action defines every transition the application state accepts.
// Each action is its own struct; consumers switch on the concrete type.
package action

import "github.com/sandeepkv93/taskflow/internal/model"

type Type string

const (
	TypeAddTask         Type = "ADD_TASK"
	TypeUpdateTask      Type = "UPDATE_TASK"
	TypeDeleteTask      Type = "DELETE_TASK"
	TypeToggleTask      Type = "TOGGLE_TASK"
	TypeMoveTask        Type = "MOVE_TASK"
	TypeReorderTasks    Type = "REORDER_TASKS"
	TypeAddSubtask      Type = "ADD_SUBTASK"
	TypeToggleSubtask   Type = "TOGGLE_SUBTASK"
	TypeDeleteSubtask   Type = "DELETE_SUBTASK"
	TypeAddComment      Type = "ADD_COMMENT"
	TypeAssignTask      Type = "ASSIGN_TASK"
	TypeAddList         Type = "ADD_LIST"
	TypeUpdateList      Type = "UPDATE_LIST"
	TypeDeleteList      Type = "DELETE_LIST"
	TypeAddListMember   Type = "ADD_LIST_MEMBER"
	TypeAddColumn       Type = "ADD_COLUMN"
	TypeRenameColumn    Type = "RENAME_COLUMN"
	TypeDeleteColumn    Type = "DELETE_COLUMN"
	TypeReorderColumns  Type = "REORDER_COLUMNS"
	TypeAddTag          Type = "ADD_TAG"
	TypeDeleteTag       Type = "DELETE_TAG"
	TypeAddHabit        Type = "ADD_HABIT"
	TypeDeleteHabit     Type = "DELETE_HABIT"
	TypeToggleHabit     Type = "TOGGLE_HABIT"
	TypeAddCountdown    Type = "ADD_COUNTDOWN"
	TypeDeleteCountdown Type = "DELETE_COUNTDOWN"

	TypeStartTimer             Type = "START_TIMER"
	TypePauseTimer             Type = "PAUSE_TIMER"
	TypeResumeTimer            Type = "RESUME_TIMER"
	TypeResetTimer             Type = "RESET_TIMER"
	TypeSkipSession            Type = "SKIP_SESSION"
	TypeTick                   Type = "TICK"
	TypeSetFocusTask           Type = "SET_FOCUS_TASK"
	TypeUpdatePomodoroSettings Type = "UPDATE_POMODORO_SETTINGS"

	TypeSetActiveList Type = "SET_ACTIVE_LIST"
	TypeSetActiveTag  Type = "SET_ACTIVE_TAG"
	TypeSelectTask    Type = "SELECT_TASK"
	TypeSetSortOrder  Type = "SET_SORT_ORDER"
	TypeSetView       Type = "SET_VIEW"

	TypeUnlockAchievement Type = "UNLOCK_ACHIEVEMENT"
	TypeLoadState         Type = "LOAD_STATE"
	TypeUndo              Type = "UNDO"
	TypeRedo              Type = "REDO"
	TypeClearHistory      Type = "CLEAR_HISTORY"
)

// Action is implemented only by the types in this package.
type Action interface {
	Type() Type
	sealed()
}

type kind struct{}

func (kind) sealed() {}

type AddTask struct {
	kind
	Task model.Task
}

// UpdateTask replaces the task with the same id.
type UpdateTask struct {
	kind
	Task model.Task
}

type DeleteTask struct {
	kind
	ID string
}

type ToggleTask struct {
	kind
	ID string
}

// MoveTask moves a task to another list and, optionally, a column of that list.
type MoveTask struct {
	kind
	ID       string
	ListID   string
	ColumnID string
}

// ReorderTasks moves DraggedID to the position of TargetID within their list.
type ReorderTasks struct {
	kind
	DraggedID string
	TargetID  string
}

type AddSubtask struct {
	kind
	TaskID  string
	Subtask model.Subtask
}

type ToggleSubtask struct {
	kind
	TaskID    string
	SubtaskID string
}

type DeleteSubtask struct {
	kind
	TaskID    string
	SubtaskID string
}

type AddComment struct {
	kind
	TaskID  string
	Comment model.Comment
}

type AssignTask struct {
	kind
	TaskID string
	UserID string
}

// AddList adds a list together with its initial board columns, as one step.
type AddList struct {
	kind
	List    model.List
	Columns []model.Column
}

type UpdateList struct {
	kind
	List model.List
}

type DeleteList struct {
	kind
	ID string
}

type AddListMember struct {
	kind
	ListID string
	UserID string
}

type AddColumn struct {
	kind
	Column model.Column
}

type RenameColumn struct {
	kind
	ID   string
	Name string
}

type DeleteColumn struct {
	kind
	ID string
}

type ReorderColumns struct {
	kind
	DraggedID string
	TargetID  string
}

type AddTag struct {
	kind
	Name string
}

type DeleteTag struct {
	kind
	Name string
}

type AddHabit struct {
	kind
	Habit model.Habit
}

type DeleteHabit struct {
	kind
	ID string
}

// ToggleHabit flips the completion of habit ID on Date (YYYY-MM-DD).
type ToggleHabit struct {
	kind
	ID   string
	Date string
}

type AddCountdown struct {
	kind
	Event model.CountdownEvent
}

type DeleteCountdown struct {
	kind
	ID string
}

type StartTimer struct{ kind }

type PauseTimer struct{ kind }

type ResumeTimer struct{ kind }

type ResetTimer struct{ kind }

type SkipSession struct{ kind }

type Tick struct{ kind }

type SetFocusTask struct {
	kind
	TaskID string
}

type UpdatePomodoroSettings struct {
	kind
	Settings model.PomodoroSettings
}

type SetActiveList struct {
	kind
	ID string
}

type SetActiveTag struct {
	kind
	Tag string
}

type SelectTask struct {
	kind
	ID string
}

type SetSortOrder struct {
	kind
	Order model.SortOrder
}

type SetView struct {
	kind
	View model.View
}

type UnlockAchievement struct {
	kind
	ID string
}

// LoadState hydrates the whole state, typically from storage.
type LoadState struct {
	kind
	State *model.AppState
}

type Undo struct{ kind }

type Redo struct{ kind }

type ClearHistory struct{ kind }

func (AddTask) Type() Type                { return TypeAddTask }
func (UpdateTask) Type() Type             { return TypeUpdateTask }
func (DeleteTask) Type() Type             { return TypeDeleteTask }
func (ToggleTask) Type() Type             { return TypeToggleTask }
func (MoveTask) Type() Type               { return TypeMoveTask }
func (ReorderTasks) Type() Type           { return TypeReorderTasks }
func (AddSubtask) Type() Type             { return TypeAddSubtask }
func (ToggleSubtask) Type() Type          { return TypeToggleSubtask }
func (DeleteSubtask) Type() Type          { return TypeDeleteSubtask }
func (AddComment) Type() Type             { return TypeAddComment }
func (AssignTask) Type() Type             { return TypeAssignTask }
func (AddList) Type() Type                { return TypeAddList }
func (UpdateList) Type() Type             { return TypeUpdateList }
func (DeleteList) Type() Type             { return TypeDeleteList }
func (AddListMember) Type() Type          { return TypeAddListMember }
func (AddColumn) Type() Type              { return TypeAddColumn }
func (RenameColumn) Type() Type           { return TypeRenameColumn }
func (DeleteColumn) Type() Type           { return TypeDeleteColumn }
func (ReorderColumns) Type() Type         { return TypeReorderColumns }
func (AddTag) Type() Type                 { return TypeAddTag }
func (DeleteTag) Type() Type              { return TypeDeleteTag }
func (AddHabit) Type() Type               { return TypeAddHabit }
func (DeleteHabit) Type() Type            { return TypeDeleteHabit }
func (ToggleHabit) Type() Type            { return TypeToggleHabit }
func (AddCountdown) Type() Type           { return TypeAddCountdown }
func (DeleteCountdown) Type() Type        { return TypeDeleteCountdown }
func (StartTimer) Type() Type             { return TypeStartTimer }
func (PauseTimer) Type() Type             { return TypePauseTimer }
func (ResumeTimer) Type() Type            { return TypeResumeTimer }
func (ResetTimer) Type() Type             { return TypeResetTimer }
func (SkipSession) Type() Type            { return TypeSkipSession }
func (Tick) Type() Type                   { return TypeTick }
func (SetFocusTask) Type() Type           { return TypeSetFocusTask }
func (UpdatePomodoroSettings) Type() Type { return TypeUpdatePomodoroSettings }
func (SetActiveList) Type() Type          { return TypeSetActiveList }
func (SetActiveTag) Type() Type           { return TypeSetActiveTag }
func (SelectTask) Type() Type             { return TypeSelectTask }
func (SetSortOrder) Type() Type           { return TypeSetSortOrder }
func (SetView) Type() Type                { return TypeSetView }
func (UnlockAchievement) Type() Type      { return TypeUnlockAchievement }
func (LoadState) Type() Type              { return TypeLoadState }
func (Undo) Type() Type                   { return TypeUndo }
func (Redo) Type() Type                   { return TypeRedo }
func (ClearHistory) Type() Type           { return TypeClearHistory }
