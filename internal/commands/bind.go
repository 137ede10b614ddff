package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/assist"
	"github.com/sandeepkv93/taskflow/internal/model"
)

// Store is the part of the application store the handlers need.
type Store interface {
	State() *model.AppState
	Dispatch(action.Action)
	CanUndo() bool
	CanRedo() bool
}

// Bind returns handlers that turn commands into store actions. assistant
// may be nil; add then takes the text as a plain title and ask fails.
func Bind(ctx context.Context, store Store, assistant assist.Assistant, clock clockwork.Clock) Handlers {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	b := binder{ctx: ctx, store: store, assistant: assistant, clock: clock}
	return Handlers{
		Add:       b.add,
		Done:      b.done,
		Delete:    b.delete,
		Undo:      b.undo,
		Redo:      b.redo,
		Tag:       b.tag,
		Untag:     b.untag,
		List:      b.list,
		DropList:  b.dropList,
		Focus:     b.focus,
		Habit:     b.habit,
		Countdown: b.countdown,
		View:      b.view,
		Sort:      b.sort,
		Ask:       b.ask,
	}
}

type binder struct {
	ctx       context.Context
	store     Store
	assistant assist.Assistant
	clock     clockwork.Clock
}

func (b binder) add(args AddArgs) (Result, error) {
	s := b.store.State()
	listID := s.ActiveListID
	if _, ok := s.ListByID(listID); !ok {
		listID = model.DefaultListID
	}
	task := model.Task{
		ID:        model.NewID(),
		Title:     args.Title,
		ListID:    listID,
		Tags:      []string{},
		Subtasks:  []model.Subtask{},
		Comments:  []model.Comment{},
		CreatedAt: b.clock.Now(),
	}
	if s.ActiveTag != "" {
		task.Tags = []string{s.ActiveTag}
	}
	if b.assistant != nil {
		sug, err := b.assistant.ParseTask(b.ctx, args.Title)
		if err != nil {
			return Result{}, fmt.Errorf("parse task: %w", err)
		}
		task.Title = sug.Title
		task.Description = sug.Description
		task.DueDate = sug.DueDate
		task.Priority = sug.Priority
		task.Tags = model.NormalizeTags(append(task.Tags, sug.Tags...))
	}
	b.store.Dispatch(action.AddTask{Task: task})
	return Result{Message: fmt.Sprintf("Added %q", task.Title)}, nil
}

func (b binder) done(args TargetArgs) (Result, error) {
	t, err := ResolveTask(b.store.State(), args.Ref)
	if err != nil {
		return Result{}, err
	}
	b.store.Dispatch(action.ToggleTask{ID: t.ID})
	if t.Completed {
		return Result{Message: fmt.Sprintf("Reopened %q", t.Title)}, nil
	}
	return Result{Message: fmt.Sprintf("Completed %q", t.Title)}, nil
}

func (b binder) delete(args TargetArgs) (Result, error) {
	t, err := ResolveTask(b.store.State(), args.Ref)
	if err != nil {
		return Result{}, err
	}
	b.store.Dispatch(action.DeleteTask{ID: t.ID})
	return Result{Message: fmt.Sprintf("Deleted %q", t.Title)}, nil
}

func (b binder) undo() (Result, error) {
	if !b.store.CanUndo() {
		return Result{Message: "Nothing to undo"}, nil
	}
	b.store.Dispatch(action.Undo{})
	return Result{Message: "Undone"}, nil
}

func (b binder) redo() (Result, error) {
	if !b.store.CanRedo() {
		return Result{Message: "Nothing to redo"}, nil
	}
	b.store.Dispatch(action.Redo{})
	return Result{Message: "Redone"}, nil
}

func (b binder) tag(args NameArgs) (Result, error) {
	name := model.NormalizeTag(strings.TrimPrefix(args.Name, "#"))
	if name == "" {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tag name is empty"}
	}
	b.store.Dispatch(action.AddTag{Name: name})
	return Result{Message: fmt.Sprintf("Tag #%s", name)}, nil
}

func (b binder) untag(args NameArgs) (Result, error) {
	name := model.NormalizeTag(strings.TrimPrefix(args.Name, "#"))
	if !b.store.State().HasTag(name) {
		return Result{}, &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no tag #%s", name)}
	}
	b.store.Dispatch(action.DeleteTag{Name: name})
	return Result{Message: fmt.Sprintf("Removed tag #%s", name)}, nil
}

func (b binder) list(args NameArgs) (Result, error) {
	l := model.List{ID: model.NewID(), Name: args.Name, Members: []string{}}
	b.store.Dispatch(action.AddList{List: l, Columns: []model.Column{
		{ID: model.NewID(), Name: "To Do"},
		{ID: model.NewID(), Name: "Done"},
	}})
	return Result{Message: fmt.Sprintf("Created list %q", l.Name)}, nil
}

func (b binder) dropList(args TargetArgs) (Result, error) {
	s := b.store.State()
	var found *model.List
	for i := range s.Lists {
		l := s.Lists[i]
		if l.ID == args.Ref || strings.EqualFold(l.Name, args.Ref) {
			found = &l
			break
		}
	}
	if found == nil {
		return Result{}, &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no list %q", args.Ref)}
	}
	if found.ID == model.DefaultListID {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "the inbox cannot be deleted"}
	}
	b.store.Dispatch(action.DeleteList{ID: found.ID})
	return Result{Message: fmt.Sprintf("Deleted list %q", found.Name)}, nil
}

func (b binder) focus(args FocusArgs) (Result, error) {
	switch args.Op {
	case FocusStart:
		b.store.Dispatch(action.StartTimer{})
		return Result{Message: "Timer started"}, nil
	case FocusPause:
		b.store.Dispatch(action.PauseTimer{})
		return Result{Message: "Timer paused"}, nil
	case FocusResume:
		b.store.Dispatch(action.ResumeTimer{})
		return Result{Message: "Timer resumed"}, nil
	case FocusReset:
		b.store.Dispatch(action.ResetTimer{})
		return Result{Message: "Timer reset"}, nil
	case FocusSkip:
		b.store.Dispatch(action.SkipSession{})
		return Result{Message: "Session skipped"}, nil
	case FocusTask:
		t, err := ResolveTask(b.store.State(), args.Target)
		if err != nil {
			return Result{}, err
		}
		b.store.Dispatch(action.SetFocusTask{TaskID: t.ID})
		return Result{Message: fmt.Sprintf("Focusing on %q", t.Title)}, nil
	default:
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown focus op: %s", args.Op)}
	}
}

func (b binder) habit(args NameArgs) (Result, error) {
	h := model.Habit{ID: model.NewID(), Name: args.Name, Completions: []string{}, CreatedAt: b.clock.Now()}
	b.store.Dispatch(action.AddHabit{Habit: h})
	return Result{Message: fmt.Sprintf("Tracking habit %q", h.Name)}, nil
}

func (b binder) countdown(args CountdownArgs) (Result, error) {
	now := b.clock.Now()
	target := time.Date(args.Date.Year(), args.Date.Month(), args.Date.Day(), 0, 0, 0, 0, now.Location())
	ev := model.CountdownEvent{ID: model.NewID(), Name: args.Name, TargetDate: target}
	b.store.Dispatch(action.AddCountdown{Event: ev})
	return Result{Message: fmt.Sprintf("%s in %d days", ev.Name, ev.DaysUntil(now))}, nil
}

func (b binder) view(args ViewArgs) (Result, error) {
	b.store.Dispatch(action.SetView{View: args.View})
	return Result{}, nil
}

func (b binder) sort(args SortArgs) (Result, error) {
	b.store.Dispatch(action.SetSortOrder{Order: args.Order})
	return Result{Message: fmt.Sprintf("Sorted by %s", args.Order)}, nil
}

func (b binder) ask(args AskArgs) (Result, error) {
	if b.assistant == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "assistant not configured"}
	}
	md, err := b.assistant.Summarize(b.ctx, args.Text)
	if err != nil {
		return Result{}, fmt.Errorf("summarize: %w", err)
	}
	return Result{Message: "Assistant summary ready", Markdown: md}, nil
}

// ResolveTask finds a task by exact id, then unique id prefix, then
// case-insensitive title.
func ResolveTask(s *model.AppState, ref string) (model.Task, error) {
	ref = strings.TrimSpace(ref)
	if t, _, ok := s.TaskByID(ref); ok {
		return t, nil
	}
	var matches []model.Task
	for _, t := range s.Tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		for _, t := range s.Tasks {
			if strings.EqualFold(t.Title, ref) {
				matches = append(matches, t)
			}
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, &CommandError{Code: ErrCodeNotFound, Message: fmt.Sprintf("no task matches %q", ref)}
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%q matches %d tasks", ref, len(matches))}
	}
}
