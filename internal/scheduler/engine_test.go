package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC()
	if err := engine.Schedule(ReminderEvent{ID: "later", TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(ReminderEvent{ID: "sooner", TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineFiresOnFakeClock(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	engine := NewEngine(4, WithClock(clock))
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule(ReminderEvent{ID: "t1", TaskID: "t1", TriggerAt: start.Add(10 * time.Minute)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	clock.BlockUntil(1)

	select {
	case ev := <-engine.C():
		t.Fatalf("event fired before trigger time: %+v", ev)
	default:
	}

	clock.Advance(10 * time.Minute)
	ev := waitEvent(t, engine.C(), time.Second)
	if ev.TaskID != "t1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if engine.Pending() != 0 {
		t.Fatalf("expected empty queue, got %d", engine.Pending())
	}
}

func TestScheduleReplacesPendingEventWithSameID(t *testing.T) {
	engine := NewEngine(4)
	now := time.Now().UTC()
	if err := engine.Schedule(ReminderEvent{ID: "r", Title: "old", TriggerAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := engine.Schedule(ReminderEvent{ID: "r", Title: "new", TriggerAt: now.Add(10 * time.Millisecond)}); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected one pending event, got %d", engine.Pending())
	}

	engine.Start()
	defer engine.Stop()
	ev := waitEvent(t, engine.C(), time.Second)
	if ev.Title != "new" {
		t.Fatalf("expected replaced event, got %+v", ev)
	}
}

func TestCancelRemovesPendingEvent(t *testing.T) {
	engine := NewEngine(4)
	now := time.Now().UTC()
	_ = engine.Schedule(ReminderEvent{ID: "a", TriggerAt: now.Add(time.Hour)})
	_ = engine.Schedule(ReminderEvent{ID: "b", TriggerAt: now.Add(2 * time.Hour)})

	if !engine.Cancel("a") {
		t.Fatal("expected cancel to report pending event")
	}
	if engine.Cancel("a") {
		t.Fatal("expected second cancel to report nothing pending")
	}
	if engine.Pending() != 1 {
		t.Fatalf("expected one pending event, got %d", engine.Pending())
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	now := time.Now().UTC().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(ReminderEvent{
			ID:        "evt-" + time.Duration(i).String(),
			TriggerAt: now,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesInput(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(ReminderEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
	if err := engine.Schedule(ReminderEvent{TriggerAt: time.Now()}); err != ErrMissingEventID {
		t.Fatalf("expected ErrMissingEventID, got %v", err)
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	if err := engine.Schedule(ReminderEvent{ID: "late", TriggerAt: time.Now()}); err != ErrEngineStopped {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan ReminderEvent, timeout time.Duration) ReminderEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return ReminderEvent{}
	}
}
