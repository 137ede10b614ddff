package storage

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

func sampleState() *model.AppState {
	created := time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)
	s := model.NewAppState()
	s.Lists = []model.List{{ID: model.DefaultListID, Name: "Inbox"}}
	s.Tasks = []model.Task{{
		ID:        "t1",
		Title:     "Write report",
		ListID:    model.DefaultListID,
		Tags:      []string{"work"},
		Subtasks:  []model.Subtask{},
		Comments:  []model.Comment{},
		CreatedAt: created,
		Priority:  model.PriorityHigh,
	}}
	s.Tags = []string{"work"}
	s.UnlockedAchievements = []string{"first_task"}
	s.Pomodoro.IsActive = true
	s.Pomodoro.CurrentCycle = 2
	s.Pomodoro.FocusHistory = []model.FocusRecord{{StartTime: created, EndTime: created.Add(25 * time.Minute), Duration: 1500}}
	s.ActiveTag = "work"
	s.SelectedTaskID = "t1"
	s.SortOrder = model.SortPriority
	return s
}

func TestEncodeDecodeKeepsDurableFieldsOnly(t *testing.T) {
	at := time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC)
	raw, err := EncodeState(sampleState(), at)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{`"version":1`, `"unlockedAchievements"`, `"focusHistory"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("expected %s in payload: %s", key, raw)
		}
	}
	if strings.Contains(string(raw), "selectedTaskId") || strings.Contains(string(raw), "isActive") {
		t.Fatalf("transient fields leaked into snapshot: %s", raw)
	}

	got, err := DecodeState(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected tasks: %#v", got.Tasks)
	}
	if got.Pomodoro.IsActive || got.Pomodoro.CurrentCycle != 2 || len(got.Pomodoro.FocusHistory) != 1 {
		t.Fatalf("unexpected pomodoro: %#v", got.Pomodoro)
	}
	if got.ActiveTag != "" || got.SelectedTaskID != "" {
		t.Fatalf("expected transient fields reset, got tag=%q selected=%q", got.ActiveTag, got.SelectedTaskID)
	}
	if got.SortOrder != model.SortPriority {
		t.Fatalf("expected sort order kept, got %q", got.SortOrder)
	}
}

func TestDecodeStateRejectsEmptyAndMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{name: "blank", raw: "  ", want: ErrEmptySnapshot},
		{name: "no tasks", raw: `{"version":1,"tasks":[]}`, want: ErrEmptySnapshot},
		{name: "future version", raw: `{"version":99,"tasks":[{"id":"a"}]}`, want: ErrUnsupportedVersion},
	}
	for _, tc := range cases {
		if _, err := DecodeState([]byte(tc.raw)); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	_, err := DecodeState([]byte(`{"tasks": [`))
	if err == nil || errors.Is(err, ErrEmptySnapshot) {
		t.Fatalf("expected decode error for corrupt json, got %v", err)
	}
}

func TestWriteSnapshotFileIsReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "taskflow.json")
	if err := WriteSnapshotFile(path, sampleState(), time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadSnapshotFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Tasks[0].ID != "t1" {
		t.Fatalf("unexpected exported task: %#v", got.Tasks[0])
	}
}
