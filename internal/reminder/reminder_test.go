package reminder_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
	"github.com/sandeepkv93/taskflow/internal/reminder"
	"github.com/sandeepkv93/taskflow/internal/scheduler"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

var base = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func taskWithReminder(id string, due time.Time, minutes int) model.Task {
	return model.Task{
		ID:              id,
		Title:           "Task " + id,
		ListID:          model.DefaultListID,
		CreatedAt:       base.Add(-24 * time.Hour),
		DueDate:         &due,
		ReminderMinutes: &minutes,
	}
}

type stateBox struct {
	mu sync.Mutex
	s  *model.AppState
}

func (b *stateBox) get() *model.AppState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s
}

func (b *stateBox) set(s *model.AppState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.s = s
}

func newState(tasks ...model.Task) *model.AppState {
	s := model.NewAppState()
	s.Tasks = tasks
	return s
}

func TestDueAndUpcoming(t *testing.T) {
	t.Parallel()

	done := taskWithReminder("done", base.Add(time.Hour), 90)
	done.Completed = true
	at := base
	done.CompletedAt = &at
	tasks := []model.Task{
		taskWithReminder("due", base.Add(20*time.Minute), 30),
		taskWithReminder("later", base.Add(2*time.Hour), 30),
		taskWithReminder("soon", base.Add(time.Hour), 30),
		taskWithReminder("past", base.Add(-time.Minute), 30),
		done,
		{ID: "plain", Title: "No reminder", CreatedAt: base},
	}

	due := reminder.Due(tasks, base)
	require.Len(t, due, 1)
	assert.Equal(t, "due", due[0].TaskID)

	upcoming := reminder.Upcoming(tasks, base)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].TaskID)
	assert.Equal(t, "later", upcoming[1].TaskID)
}

func TestScanSchedulesLiveRemindersAndCancelsStaleOnes(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(base)
	engine := scheduler.NewEngine(8, scheduler.WithClock(clock))
	box := &stateBox{s: newState(
		taskWithReminder("a", base.Add(time.Hour), 15),
		taskWithReminder("b", base.Add(-time.Hour), 15),
		model.Task{ID: "c", Title: "plain", CreatedAt: base},
	)}
	r := reminder.NewRunner(reminder.Options{
		Engine:  engine,
		Markers: storage.NewReminderMarkers(storage.NewMemoryRepository(clock)),
		State:   box.get,
		Clock:   clock,
	})

	assert.Equal(t, 1, r.Scan())
	assert.Equal(t, 1, engine.Pending())

	box.set(newState())
	assert.Equal(t, 0, r.Scan())
	assert.Equal(t, 0, engine.Pending())
}

func TestDeliverRespectsCooldown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(base)
	recorder := notify.NewRecorder(10)
	markers := storage.NewReminderMarkers(storage.NewMemoryRepository(clock))
	task := taskWithReminder("a", base.Add(3*time.Hour), 180)
	box := &stateBox{s: newState(task)}
	r := reminder.NewRunner(reminder.Options{
		Markers:  markers,
		Notifier: recorder,
		State:    box.get,
		Clock:    clock,
		Cooldown: time.Hour,
	})
	ev := scheduler.ReminderEvent{ID: "a", TaskID: "a", TriggerAt: base}

	delivered, err := r.Deliver(ctx, ev)
	require.NoError(t, err)
	assert.True(t, delivered)

	clock.Advance(30 * time.Minute)
	delivered, err = r.Deliver(ctx, ev)
	require.NoError(t, err)
	assert.False(t, delivered)

	clock.Advance(31 * time.Minute)
	delivered, err = r.Deliver(ctx, ev)
	require.NoError(t, err)
	assert.True(t, delivered)

	all := recorder.All()
	require.Len(t, all, 2)
	assert.Equal(t, notify.LevelWarn, all[0].Level)
	assert.Contains(t, all[0].Body, "Task a")

	last, err := markers.LastReminded(ctx, "a")
	require.NoError(t, err)
	assert.True(t, last.Equal(base.Add(61*time.Minute)))
}

func TestDeliverSkipsCompletedAndRescheduledTasks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(base)
	recorder := notify.NewRecorder(10)
	task := taskWithReminder("a", base.Add(time.Hour), 60)
	completed := task
	completed.Completed = true
	at := base
	completed.CompletedAt = &at
	box := &stateBox{s: newState(completed)}
	r := reminder.NewRunner(reminder.Options{
		Markers:  storage.NewReminderMarkers(storage.NewMemoryRepository(clock)),
		Notifier: recorder,
		State:    box.get,
		Clock:    clock,
	})

	delivered, err := r.Deliver(ctx, scheduler.ReminderEvent{ID: "a", TaskID: "a", TriggerAt: base})
	require.NoError(t, err)
	assert.False(t, delivered)

	box.set(newState(task))
	delivered, err = r.Deliver(ctx, scheduler.ReminderEvent{ID: "a", TaskID: "a", TriggerAt: base.Add(-time.Minute)})
	require.NoError(t, err)
	assert.False(t, delivered, "stale trigger time")

	delivered, err = r.Deliver(ctx, scheduler.ReminderEvent{ID: "missing", TaskID: "missing", TriggerAt: base})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Empty(t, recorder.All())
}

func TestRunDeliversWhenTriggerPasses(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClockAt(base)
	recorder := notify.NewRecorder(10)
	box := &stateBox{s: newState(taskWithReminder("a", base.Add(time.Hour), 50))}
	r := reminder.NewRunner(reminder.Options{
		Engine:       scheduler.NewEngine(8, scheduler.WithClock(clock)),
		Markers:      storage.NewReminderMarkers(storage.NewMemoryRepository(clock)),
		Notifier:     recorder,
		State:        box.get,
		Clock:        clock,
		ScanInterval: time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Run(ctx)
	}()

	clock.BlockUntil(2)
	clock.Advance(10 * time.Minute)

	require.Eventually(t, func() bool { return len(recorder.All()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Len(t, recorder.All(), 1)
}
