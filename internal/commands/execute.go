package commands

import "fmt"

type Result struct {
	Message string
	// Markdown holds longer output for the detail pane.
	Markdown string
}

type Handlers struct {
	Add       func(AddArgs) (Result, error)
	Done      func(TargetArgs) (Result, error)
	Delete    func(TargetArgs) (Result, error)
	Undo      func() (Result, error)
	Redo      func() (Result, error)
	Tag       func(NameArgs) (Result, error)
	Untag     func(NameArgs) (Result, error)
	List      func(NameArgs) (Result, error)
	DropList  func(TargetArgs) (Result, error)
	Focus     func(FocusArgs) (Result, error)
	Habit     func(NameArgs) (Result, error)
	Countdown func(CountdownArgs) (Result, error)
	View      func(ViewArgs) (Result, error)
	Sort      func(SortArgs) (Result, error)
	Ask       func(AskArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		return run(cmd.Type, handlers.Add, cmd.Add)
	case TypeDone:
		return run(cmd.Type, handlers.Done, cmd.Target)
	case TypeDelete:
		return run(cmd.Type, handlers.Delete, cmd.Target)
	case TypeDropList:
		return run(cmd.Type, handlers.DropList, cmd.Target)
	case TypeTag:
		return run(cmd.Type, handlers.Tag, cmd.Name)
	case TypeUntag:
		return run(cmd.Type, handlers.Untag, cmd.Name)
	case TypeList:
		return run(cmd.Type, handlers.List, cmd.Name)
	case TypeHabit:
		return run(cmd.Type, handlers.Habit, cmd.Name)
	case TypeFocus:
		return run(cmd.Type, handlers.Focus, cmd.Focus)
	case TypeCountdown:
		return run(cmd.Type, handlers.Countdown, cmd.Countdown)
	case TypeView:
		return run(cmd.Type, handlers.View, cmd.View)
	case TypeSort:
		return run(cmd.Type, handlers.Sort, cmd.Sort)
	case TypeAsk:
		return run(cmd.Type, handlers.Ask, cmd.Ask)
	case TypeUndo:
		return runNoArgs(cmd.Type, handlers.Undo)
	case TypeRedo:
		return runNoArgs(cmd.Type, handlers.Redo)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func run[T any](typ Type, handler func(T) (Result, error), args *T) (Result, error) {
	if handler == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", typ)}
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is missing its arguments", typ)}
	}
	return handler(*args)
}

func runNoArgs(typ Type, handler func() (Result, error)) (Result, error) {
	if handler == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", typ)}
	}
	return handler()
}
