package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

const SnapshotVersion = 1

var (
	ErrEmptySnapshot      = errors.New("storage: snapshot has no tasks")
	ErrUnsupportedVersion = errors.New("storage: unsupported snapshot version")
)

// Snapshot is the persisted shape of an AppState. Filters, selection and the
// running timer are not part of it.
type Snapshot struct {
	Version              int                    `json:"version"`
	SavedAt              time.Time              `json:"savedAt"`
	Tasks                []model.Task           `json:"tasks"`
	Lists                []model.List           `json:"lists"`
	Columns              []model.Column         `json:"columns"`
	Tags                 []string               `json:"tags"`
	Habits               []model.Habit          `json:"habits"`
	Countdowns           []model.CountdownEvent `json:"countdowns"`
	UnlockedAchievements []string               `json:"unlockedAchievements"`
	Pomodoro             PomodoroSnapshot       `json:"pomodoro"`
	ActiveListID         string                 `json:"activeListId,omitempty"`
	SortOrder            model.SortOrder        `json:"sortOrder,omitempty"`
	View                 model.View             `json:"view,omitempty"`
}

type PomodoroSnapshot struct {
	Settings     model.PomodoroSettings `json:"settings"`
	FocusHistory []model.FocusRecord    `json:"focusHistory"`
	CurrentCycle int                    `json:"currentCycle"`
}

func SnapshotOf(s *model.AppState, at time.Time) Snapshot {
	return Snapshot{
		Version:              SnapshotVersion,
		SavedAt:              at.UTC(),
		Tasks:                s.Tasks,
		Lists:                s.Lists,
		Columns:              s.Columns,
		Tags:                 s.Tags,
		Habits:               s.Habits,
		Countdowns:           s.Countdowns,
		UnlockedAchievements: s.UnlockedAchievements,
		Pomodoro: PomodoroSnapshot{
			Settings:     s.Pomodoro.Settings,
			FocusHistory: s.Pomodoro.FocusHistory,
			CurrentCycle: s.Pomodoro.CurrentCycle,
		},
		ActiveListID: s.ActiveListID,
		SortOrder:    s.SortOrder,
		View:         s.View,
	}
}

// State rebuilds an AppState. The result still needs the reducer's load
// normalization before use.
func (snap Snapshot) State() *model.AppState {
	s := model.NewAppState()
	s.Tasks = snap.Tasks
	s.Lists = snap.Lists
	s.Columns = snap.Columns
	s.Tags = snap.Tags
	s.Habits = snap.Habits
	s.Countdowns = snap.Countdowns
	s.UnlockedAchievements = snap.UnlockedAchievements
	s.Pomodoro = model.NewPomodoroState(snap.Pomodoro.Settings)
	s.Pomodoro.FocusHistory = snap.Pomodoro.FocusHistory
	s.Pomodoro.CurrentCycle = snap.Pomodoro.CurrentCycle
	if snap.ActiveListID != "" {
		s.ActiveListID = snap.ActiveListID
	}
	if snap.SortOrder != "" {
		s.SortOrder = snap.SortOrder
	}
	if snap.View != "" {
		s.View = snap.View
	}
	return s
}

func EncodeState(s *model.AppState, at time.Time) ([]byte, error) {
	if s == nil {
		return nil, errors.New("storage: nil state")
	}
	return json.Marshal(SnapshotOf(s, at))
}

// DecodeState parses a stored snapshot. A blank payload or one without tasks
// yields ErrEmptySnapshot.
func DecodeState(raw []byte) (*model.AppState, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, ErrEmptySnapshot
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}
	if len(snap.Tasks) == 0 {
		return nil, ErrEmptySnapshot
	}
	return snap.State(), nil
}

// WriteSnapshotFile writes an indented snapshot to path through a temporary
// file so readers never observe a partial write.
func WriteSnapshotFile(path string, s *model.AppState, at time.Time) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("storage: export path is required")
	}
	if s == nil {
		return errors.New("storage: nil state")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(SnapshotOf(s, at), "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadSnapshotFile loads a file written by WriteSnapshotFile.
func ReadSnapshotFile(path string) (*model.AppState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeState(raw)
}
