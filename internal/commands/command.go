package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

type Type string

const (
	TypeAdd       Type = "add"
	TypeDone      Type = "done"
	TypeDelete    Type = "delete"
	TypeUndo      Type = "undo"
	TypeRedo      Type = "redo"
	TypeTag       Type = "tag"
	TypeUntag     Type = "untag"
	TypeList      Type = "list"
	TypeDropList  Type = "droplist"
	TypeFocus     Type = "focus"
	TypeHabit     Type = "habit"
	TypeCountdown Type = "countdown"
	TypeView      Type = "view"
	TypeSort      Type = "sort"
	TypeAsk       Type = "ask"
)

// Names lists every command word, in help order.
func Names() []Type {
	return []Type{
		TypeAdd, TypeDone, TypeDelete, TypeUndo, TypeRedo, TypeTag, TypeUntag,
		TypeList, TypeDropList, TypeFocus, TypeHabit, TypeCountdown, TypeView,
		TypeSort, TypeAsk,
	}
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
	ErrCodeNotFound        ErrorCode = "not_found"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type FocusOp string

const (
	FocusStart  FocusOp = "start"
	FocusPause  FocusOp = "pause"
	FocusResume FocusOp = "resume"
	FocusReset  FocusOp = "reset"
	FocusSkip   FocusOp = "skip"
	// FocusTask attaches the timer to the task named by FocusArgs.Target.
	FocusTask FocusOp = "task"
)

type AddArgs struct {
	Title string
}

// TargetArgs names a record by id, id prefix or exact title.
type TargetArgs struct {
	Ref string
}

type NameArgs struct {
	Name string
}

type FocusArgs struct {
	Op     FocusOp
	Target string
}

type CountdownArgs struct {
	Name string
	Date time.Time
}

type ViewArgs struct {
	View model.View
}

type SortArgs struct {
	Order model.SortOrder
}

type AskArgs struct {
	Text string
}

type Command struct {
	Type      Type
	Raw       string
	Add       *AddArgs
	Target    *TargetArgs
	Name      *NameArgs
	Focus     *FocusArgs
	Countdown *CountdownArgs
	View      *ViewArgs
	Sort      *SortArgs
	Ask       *AskArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseText(input, TypeAdd, args, func(cmd *Command, text string) { cmd.Add = &AddArgs{Title: text} })
	case TypeAsk:
		return parseText(input, TypeAsk, args, func(cmd *Command, text string) { cmd.Ask = &AskArgs{Text: text} })
	case TypeDone, TypeDelete, TypeDropList:
		return parseText(input, Type(head), args, func(cmd *Command, text string) { cmd.Target = &TargetArgs{Ref: text} })
	case TypeTag, TypeUntag, TypeList, TypeHabit:
		return parseText(input, Type(head), args, func(cmd *Command, text string) { cmd.Name = &NameArgs{Name: text} })
	case TypeUndo, TypeRedo:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeFocus:
		return parseFocus(input, args)
	case TypeCountdown:
		return parseCountdown(input, args)
	case TypeView:
		return parseView(input, args)
	case TypeSort:
		return parseSort(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseText(raw string, typ Type, args []string, set func(*Command, string)) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires an argument", typ)}
	}
	cmd := Command{Type: typ, Raw: raw}
	set(&cmd, text)
	return cmd, nil
}

func parseFocus(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "focus requires start, pause, resume, reset, skip or a task"}
	}
	op := FocusOp(strings.ToLower(args[0]))
	switch op {
	case FocusStart, FocusPause, FocusResume, FocusReset, FocusSkip:
		if len(args) > 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("focus %s takes no arguments", op)}
		}
		return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Op: op}}, nil
	default:
		return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Op: FocusTask, Target: strings.Join(args, " ")}}, nil
	}
}

func parseCountdown(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "countdown requires a name and a YYYY-MM-DD date"}
	}
	date, err := model.ParseDateKey(args[len(args)-1])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", args[len(args)-1])}
	}
	name := strings.Join(args[:len(args)-1], " ")
	return Command{Type: TypeCountdown, Raw: raw, Countdown: &CountdownArgs{Name: name, Date: date}}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires one view name"}
	}
	v := model.View(strings.ToLower(args[0]))
	if !v.IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", args[0])}
	}
	return Command{Type: TypeView, Raw: raw, View: &ViewArgs{View: v}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires one order"}
	}
	for _, order := range []model.SortOrder{model.SortManual, model.SortDueDate, model.SortPriority, model.SortCreatedAt, model.SortTitle} {
		if strings.EqualFold(string(order), args[0]) {
			return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Order: order}}, nil
		}
	}
	return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown sort order: %s", args[0])}
}
