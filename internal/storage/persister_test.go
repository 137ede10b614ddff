package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/model"
)

type failingRepo struct {
	Repository
	err error
}

func (r failingRepo) Get(context.Context, string) (string, error) { return "", r.err }

func seedState() *model.AppState {
	s := model.NewAppState()
	s.Tasks = []model.Task{{ID: "seed", Title: "Seeded", ListID: model.DefaultListID, CreatedAt: time.Now()}}
	return s
}

func TestLoadFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	cases := map[string]string{
		"corrupt": `{"tasks":`,
		"empty":   `{"version":1,"tasks":[]}`,
	}
	for name, payload := range cases {
		repo := NewMemoryRepository(nil)
		_ = repo.Put(ctx, KeyState, payload)
		state, seeded, err := NewPersister(repo).Load(ctx, seedState)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !seeded || state.Tasks[0].ID != "seed" {
			t.Fatalf("%s: expected seed state, got seeded=%v tasks=%#v", name, seeded, state.Tasks)
		}
	}

	state, seeded, err := NewPersister(NewMemoryRepository(nil)).Load(ctx, seedState)
	if err != nil || !seeded || state == nil {
		t.Fatalf("expected seed for absent snapshot, got seeded=%v err=%v", seeded, err)
	}
}

func TestLoadReturnsSeedAndErrorWhenRepositoryFails(t *testing.T) {
	boom := errors.New("disk gone")
	state, seeded, err := NewPersister(failingRepo{err: boom}).Load(context.Background(), seedState)
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if !seeded || state == nil {
		t.Fatal("expected seed state alongside error")
	}
}

func TestLoadReturnsStoredState(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)
	p := NewPersister(repo)
	if err := p.Save(ctx, sampleState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	state, seeded, err := p.Load(ctx, seedState)
	if err != nil || seeded {
		t.Fatalf("expected stored state, seeded=%v err=%v", seeded, err)
	}
	if state.Tasks[0].ID != "t1" {
		t.Fatalf("unexpected state: %#v", state.Tasks)
	}
}

func TestScheduleDebouncesToLatestState(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clock)
	p := NewPersister(repo, WithPersisterClock(clock), WithDebounce(500*time.Millisecond))

	first := sampleState()
	second := sampleState()
	second.Tasks[0].Title = "Latest"

	p.Schedule(first)
	clock.Advance(300 * time.Millisecond)
	p.Schedule(second)
	clock.Advance(300 * time.Millisecond)
	if _, err := repo.Get(ctx, KeyState); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected nothing saved inside the debounce window, got %v", err)
	}

	clock.Advance(200 * time.Millisecond)
	raw := waitForKey(t, repo, KeyState)
	got, err := DecodeState([]byte(raw))
	if err != nil {
		t.Fatalf("decode saved snapshot: %v", err)
	}
	if got.Tasks[0].Title != "Latest" {
		t.Fatalf("expected latest state saved, got %q", got.Tasks[0].Title)
	}
}

func TestCloseFlushesPendingAndIgnoresLaterSchedules(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC))
	repo := NewMemoryRepository(clock)
	p := NewPersister(repo, WithPersisterClock(clock))

	p.Schedule(sampleState())
	if err := p.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := repo.Get(ctx, KeyState); err != nil {
		t.Fatalf("expected snapshot flushed on close: %v", err)
	}

	_ = repo.Delete(ctx, KeyState)
	p.Schedule(sampleState())
	clock.Advance(time.Second)
	if err := p.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if _, err := repo.Get(ctx, KeyState); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected schedule after close to be ignored, got %v", err)
	}
}

func waitForKey(t *testing.T, repo Repository, key string) string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if v, err := repo.Get(context.Background(), key); err == nil {
			return v
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for key %s", key)
	return ""
}
