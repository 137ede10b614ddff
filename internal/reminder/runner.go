package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
	"github.com/sandeepkv93/taskflow/internal/scheduler"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

const (
	DefaultScanInterval = 30 * time.Second
	DefaultCooldown     = time.Hour
)

// Markers stores the last delivery time of each task's reminder.
type Markers interface {
	LastReminded(ctx context.Context, taskID string) (time.Time, error)
	MarkReminded(ctx context.Context, taskID string, at time.Time) error
}

type Options struct {
	Engine       *scheduler.Engine
	Markers      Markers
	Notifier     notify.Notifier
	State        func() *model.AppState
	Clock        clockwork.Clock
	ScanInterval time.Duration
	Cooldown     time.Duration
	Logger       zerolog.Logger
}

// Runner keeps the engine in step with the tasks' reminders and delivers the
// events it emits, at most once per task per cooldown window.
type Runner struct {
	engine   *scheduler.Engine
	markers  Markers
	notifier notify.Notifier
	state    func() *model.AppState
	clock    clockwork.Clock
	interval time.Duration
	cooldown time.Duration
	logger   zerolog.Logger

	mu        sync.Mutex
	scheduled map[string]bool
}

func NewRunner(opts Options) *Runner {
	r := &Runner{
		engine:    opts.Engine,
		markers:   opts.Markers,
		notifier:  opts.Notifier,
		state:     opts.State,
		clock:     opts.Clock,
		interval:  opts.ScanInterval,
		cooldown:  opts.Cooldown,
		logger:    opts.Logger,
		scheduled: make(map[string]bool),
	}
	if r.clock == nil {
		r.clock = clockwork.NewRealClock()
	}
	if r.engine == nil {
		r.engine = scheduler.NewEngine(64, scheduler.WithClock(r.clock))
	}
	if r.notifier == nil {
		r.notifier = notify.Noop{}
	}
	if r.interval <= 0 {
		r.interval = DefaultScanInterval
	}
	if r.cooldown <= 0 {
		r.cooldown = DefaultCooldown
	}
	return r
}

// Run scans immediately, then every scan interval, and delivers engine
// events until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	r.engine.Start()
	defer r.engine.Stop()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()
	r.Scan()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			r.Scan()
		case ev, ok := <-r.engine.C():
			if !ok {
				return nil
			}
			if _, err := r.Deliver(ctx, ev); err != nil {
				r.logger.Error().Err(err).Str("task_id", ev.TaskID).Msg("reminder.Runner.Run: deliver reminder")
			}
		}
	}
}

// Scan schedules every reminder that has not passed its due time and
// cancels events of tasks that no longer have one. It returns the number of
// scheduled reminders.
func (r *Runner) Scan() int {
	s := r.currentState()
	if s == nil {
		return 0
	}
	now := r.clock.Now()
	live := make(map[string]bool)
	for _, t := range s.Tasks {
		rem, err := model.ReminderFor(t)
		if err != nil || !now.Before(rem.DueAt) {
			continue
		}
		err = r.engine.Schedule(scheduler.ReminderEvent{
			ID:        rem.TaskID,
			TaskID:    rem.TaskID,
			Title:     rem.Title,
			TriggerAt: rem.TriggerAt,
			DueAt:     rem.DueAt,
		})
		if err != nil {
			r.logger.Warn().Err(err).Str("task_id", rem.TaskID).Msg("reminder.Runner.Scan: schedule reminder")
			continue
		}
		live[rem.TaskID] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.scheduled {
		if !live[id] {
			r.engine.Cancel(id)
		}
	}
	r.scheduled = live
	return len(live)
}

// Deliver notifies about ev if its task still carries the same reminder and
// the task was not reminded within the cooldown window.
func (r *Runner) Deliver(ctx context.Context, ev scheduler.ReminderEvent) (bool, error) {
	s := r.currentState()
	if s == nil {
		return false, nil
	}
	t, _, ok := s.TaskByID(ev.TaskID)
	if !ok {
		return false, nil
	}
	rem, err := model.ReminderFor(t)
	if err != nil || !rem.TriggerAt.Equal(ev.TriggerAt) {
		return false, nil
	}

	now := r.clock.Now()
	last, err := r.markers.LastReminded(ctx, t.ID)
	switch {
	case err == nil:
		if now.Sub(last) < r.cooldown {
			return false, nil
		}
	case !errors.Is(err, storage.ErrNotFound):
		return false, err
	}

	n := notify.Notification{
		Title: "Reminder",
		Body:  fmt.Sprintf("%s is due at %s", t.Title, rem.DueAt.Local().Format("Mon 15:04")),
		Level: notify.LevelWarn,
		At:    now,
	}
	if err := r.notifier.Send(n); err != nil {
		r.logger.Warn().Err(err).Str("task_id", t.ID).Msg("reminder.Runner.Deliver: send notification")
	}
	if err := r.markers.MarkReminded(ctx, t.ID, now); err != nil {
		return true, err
	}
	return true, nil
}

func (r *Runner) currentState() *model.AppState {
	if r.state == nil {
		return nil
	}
	return r.state()
}
