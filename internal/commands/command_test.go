package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent tomorrow", TypeAdd},
		{"done 3f2a", TypeDone},
		{"delete Buy milk", TypeDelete},
		{"undo", TypeUndo},
		{"/redo", TypeRedo},
		{"tag #finance", TypeTag},
		{"untag finance", TypeUntag},
		{"list Side project", TypeList},
		{"droplist Side project", TypeDropList},
		{"focus start", TypeFocus},
		{"habit Stretch", TypeHabit},
		{"countdown Launch day 2026-06-01", TypeCountdown},
		{"view board", TypeView},
		{"sort duedate", TypeSort},
		{"ask plan the offsite", TypeAsk},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
	if len(cases) != len(Names()) {
		t.Fatalf("every command word should be covered: %d cases, %d names", len(cases), len(Names()))
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("countdown Launch day 2026-06-01")
	if err != nil {
		t.Fatalf("parse countdown: %v", err)
	}
	if cmd.Countdown.Name != "Launch day" || !cmd.Countdown.Date.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected countdown args: %+v", cmd.Countdown)
	}

	cmd, err = Parse("sort DUEDATE")
	if err != nil || cmd.Sort.Order != model.SortDueDate {
		t.Fatalf("unexpected sort parse: %+v err=%v", cmd.Sort, err)
	}

	cmd, err = Parse("focus Write report")
	if err != nil || cmd.Focus.Op != FocusTask || cmd.Focus.Target != "Write report" {
		t.Fatalf("unexpected focus parse: %+v err=%v", cmd.Focus, err)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"   ", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"undo now", ErrCodeInvalidArgument},
		{"focus", ErrCodeInvalidArgument},
		{"focus start later", ErrCodeInvalidArgument},
		{"countdown 2026-06-01", ErrCodeInvalidArgument},
		{"countdown Launch June", ErrCodeInvalidArgument},
		{"view galaxy", ErrCodeInvalidArgument},
		{"sort randomly", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("unexpected execute result: called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("undo")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler missing error, got %v", err)
	}

	_, err = Execute(Command{Type: "bogus"}, Handlers{})
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
