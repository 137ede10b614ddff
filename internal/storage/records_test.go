package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/taskflow/internal/model"
)

func TestSettingsDefaultWhenMissingOrMalformed(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	got, err := LoadSettings(ctx, repo)
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if got.Theme != model.DefaultSettings().Theme || got.DefaultListID != model.DefaultListID {
		t.Fatalf("unexpected defaults: %#v", got)
	}

	_ = repo.Put(ctx, KeySettings, "{not json")
	got, err = LoadSettings(ctx, repo)
	if err != nil || got.Language != "en" {
		t.Fatalf("expected defaults for malformed settings, got %#v err=%v", got, err)
	}

	custom := model.DefaultSettings()
	custom.Theme = "light"
	custom.DefaultPriority = model.PriorityHigh
	if err := SaveSettings(ctx, repo, custom); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = LoadSettings(ctx, repo)
	if err != nil || got.Theme != "light" || got.DefaultPriority != model.PriorityHigh {
		t.Fatalf("unexpected saved settings: %#v err=%v", got, err)
	}
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)
	if _, err := LoadUser(ctx, repo); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := SaveUser(ctx, repo, model.User{ID: "u1", Name: "Sam"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	u, err := LoadUser(ctx, repo)
	if err != nil || u.Name != "Sam" {
		t.Fatalf("unexpected user: %#v err=%v", u, err)
	}
}

func TestReminderMarkers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)
	markers := NewReminderMarkers(repo)

	if _, err := markers.LastReminded(ctx, "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	at := time.Date(2026, 2, 9, 9, 30, 0, 0, time.UTC)
	if err := markers.MarkReminded(ctx, "t1", at); err != nil {
		t.Fatalf("mark: %v", err)
	}
	_ = markers.MarkReminded(ctx, "gone", at)

	got, err := markers.LastReminded(ctx, "t1")
	if err != nil || !got.Equal(at) {
		t.Fatalf("unexpected marker: %v err=%v", got, err)
	}

	removed, err := markers.Prune(ctx, map[string]bool{"t1": true})
	if err != nil || removed != 1 {
		t.Fatalf("expected one pruned marker, got %d err=%v", removed, err)
	}
	if _, err := markers.LastReminded(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected pruned marker gone, got %v", err)
	}
}
