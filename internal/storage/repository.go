package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// Logical keys of the persisted layout.
const (
	KeyUser           = "user"
	KeySettings       = "settings"
	KeyState          = "taskflowState"
	KeyReminderPrefix = "reminder:"
)

type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Repository is a string key-value store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]Entry, error)
}

func reminderKey(taskID string) string {
	return KeyReminderPrefix + taskID
}
