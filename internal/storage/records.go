package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

// LoadUser returns the stored user. ErrNotFound when none was saved.
func LoadUser(ctx context.Context, repo Repository) (model.User, error) {
	raw, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func SaveUser(ctx context.Context, repo Repository, u model.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return repo.Put(ctx, KeyUser, string(payload))
}

// LoadSettings returns stored settings over the defaults. Missing or
// malformed settings yield the defaults.
func LoadSettings(ctx context.Context, repo Repository) (model.Settings, error) {
	out := model.DefaultSettings()
	raw, err := repo.Get(ctx, KeySettings)
	if errors.Is(err, ErrNotFound) {
		return out, nil
	}
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return model.DefaultSettings(), nil
	}
	if !out.DefaultPriority.IsValid() {
		out.DefaultPriority = model.PriorityNone
	}
	if out.DefaultListID == "" {
		out.DefaultListID = model.DefaultListID
	}
	return out, nil
}

func SaveSettings(ctx context.Context, repo Repository, s model.Settings) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return repo.Put(ctx, KeySettings, string(payload))
}

// ReminderMarkers records when each task's reminder was last delivered.
type ReminderMarkers struct {
	repo Repository
}

func NewReminderMarkers(repo Repository) *ReminderMarkers {
	return &ReminderMarkers{repo: repo}
}

// LastReminded returns ErrNotFound when the task was never reminded.
func (m *ReminderMarkers) LastReminded(ctx context.Context, taskID string) (time.Time, error) {
	raw, err := m.repo.Get(ctx, reminderKey(taskID))
	if err != nil {
		return time.Time{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, ErrNotFound
	}
	return at, nil
}

func (m *ReminderMarkers) MarkReminded(ctx context.Context, taskID string, at time.Time) error {
	return m.repo.Put(ctx, reminderKey(taskID), at.UTC().Format(time.RFC3339Nano))
}

// Prune drops markers of tasks not in keep.
func (m *ReminderMarkers) Prune(ctx context.Context, keep map[string]bool) (int, error) {
	entries, err := m.repo.List(ctx, KeyReminderPrefix)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if keep[e.Key[len(KeyReminderPrefix):]] {
			continue
		}
		if err := m.repo.Delete(ctx, e.Key); err != nil && !errors.Is(err, ErrNotFound) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
