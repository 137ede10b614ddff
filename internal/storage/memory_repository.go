package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
)

// MemoryRepository keeps entries in process memory. It backs tests and
// the --db=memory mode of the CLI.
type MemoryRepository struct {
	clock   clockwork.Clock
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryRepository(clock clockwork.Clock) *MemoryRepository {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryRepository{clock: clock, entries: make(map[string]Entry)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return e.Value, nil
}

func (r *MemoryRepository) Put(_ context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage: key is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = Entry{Key: key, Value: value, UpdatedAt: r.clock.Now().UTC()}
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		return ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, prefix string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for k, e := range r.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
