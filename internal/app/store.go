// Package app owns the running application state: the history-wrapped
// reducer plus the collaborators that react to its transitions.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/taskflow/internal/achievement"
	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/config"
	"github.com/sandeepkv93/taskflow/internal/history"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
	"github.com/sandeepkv93/taskflow/internal/reducer"
	"github.com/sandeepkv93/taskflow/internal/reminder"
	"github.com/sandeepkv93/taskflow/internal/scheduler"
	"github.com/sandeepkv93/taskflow/internal/seed"
	"github.com/sandeepkv93/taskflow/internal/storage"
)

// Listener observes a transition. It runs after the new history is in place
// and may dispatch; such actions are queued behind the current one.
type Listener func(prev, next *model.AppState, a action.Action)

type Options struct {
	// Reducer defaults to the core reducer wrapped with Config.HistoryLimit.
	Reducer *history.Reducer
	// Persister is optional; without it state lives in memory only.
	Persister *storage.Persister
	// Repository backs reminder markers. Reminders are off without it.
	Repository storage.Repository
	Notifier   notify.Notifier
	Clock      clockwork.Clock
	Logger     zerolog.Logger
	Config     config.RuntimeConfig
	Seed       func(now time.Time) *model.AppState
}

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	reducer    *history.Reducer
	persister  *storage.Persister
	repo       storage.Repository
	notifier   notify.Notifier
	clock      clockwork.Clock
	logger     zerolog.Logger
	cfg        config.RuntimeConfig
	seed       func(now time.Time) *model.AppState
	driver     *scheduler.Driver
	runnerStop context.CancelFunc
	runnerWG   sync.WaitGroup

	mu        sync.Mutex
	hist      *history.History
	queue     []action.Action
	draining  bool
	subs      []subscription
	nextSubID int
	started   bool
	closed    bool
}

func New(opts Options) *Store {
	s := &Store{
		reducer:   opts.Reducer,
		persister: opts.Persister,
		repo:      opts.Repository,
		notifier:  opts.Notifier,
		clock:     opts.Clock,
		logger:    opts.Logger,
		cfg:       opts.Config,
		seed:      opts.Seed,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.notifier == nil {
		s.notifier = notify.Noop{}
	}
	if s.seed == nil {
		s.seed = seed.Generate
	}
	if s.reducer == nil {
		s.reducer = history.NewReducer(
			reducer.New(reducer.WithClock(s.clock)),
			history.WithLimit(s.cfg.HistoryLimit),
		)
	}
	s.hist = history.New(model.NewAppState())
	s.driver = scheduler.NewDriver(s.Dispatch, scheduler.WithDriverClock(s.clock))
	return s
}

func (s *Store) State() *model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.Present
}

func (s *Store) History() *history.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist
}

func (s *Store) CanUndo() bool { return s.History().CanUndo() }

func (s *Store) CanRedo() bool { return s.History().CanRedo() }

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	subs := make([]subscription, len(s.subs), len(s.subs)+1)
	copy(subs, s.subs)
	s.subs = append(subs, subscription{id: id, fn: l})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		kept := make([]subscription, 0, len(s.subs))
		for _, sub := range s.subs {
			if sub.id != id {
				kept = append(kept, sub)
			}
		}
		s.subs = kept
	}
}

// Dispatch applies a and notifies listeners when the history changed.
// Transitions are serialized: a dispatch arriving while another goroutine
// (or a listener) is draining the queue is appended and applied there, in
// order, before that goroutine returns.
func (s *Store) Dispatch(a action.Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, a)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		prev := s.hist
		cur := s.reducer.Reduce(prev, next)
		s.hist = cur
		subs := s.subs
		s.mu.Unlock()

		if cur != prev {
			if _, tick := next.(action.Tick); !tick {
				s.logger.Debug().Str("action", string(next.Type())).Msg("app.Store.Dispatch")
			}
			for _, sub := range subs {
				sub.fn(prev.Present, cur.Present, next)
			}
		}
		s.mu.Lock()
	}
	s.draining = false
	s.mu.Unlock()
}

// Start loads the stored state (or the seed), then wires persistence,
// achievements, the pomodoro driver and the reminder runner.
func (s *Store) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.mu.Unlock()

	state, seeded := s.load(ctx)
	s.Dispatch(action.LoadState{State: state})
	if seeded && s.persister != nil {
		s.persister.Schedule(s.State())
	}

	observer := achievement.NewObserver(s.Dispatch, s.notifier, s.clock)
	s.Subscribe(s.persist)
	s.Subscribe(observer.OnChange)
	s.Subscribe(func(_, next *model.AppState, _ action.Action) {
		s.driver.Sync(next.Pomodoro.Running())
	})
	observer.OnChange(nil, s.State(), nil)

	if s.repo != nil {
		runner := reminder.NewRunner(reminder.Options{
			Engine:       scheduler.NewEngine(s.cfg.SchedulerBuffer, scheduler.WithClock(s.clock)),
			Markers:      storage.NewReminderMarkers(s.repo),
			Notifier:     s.notifier,
			State:        s.State,
			Clock:        s.clock,
			ScanInterval: s.cfg.ReminderScanInterval,
			Cooldown:     s.cfg.ReminderCooldown,
			Logger:       s.logger,
		})
		runCtx, cancel := context.WithCancel(context.Background())
		s.runnerStop = cancel
		s.runnerWG.Add(1)
		go func() {
			defer s.runnerWG.Done()
			if err := runner.Run(runCtx); err != nil {
				s.logger.Error().Err(err).Msg("app.Store.Start: reminder runner stopped")
			}
		}()
	}
	s.logger.Info().Bool("seeded", seeded).Int("tasks", len(s.State().Tasks)).Msg("app.Store.Start: state loaded")
	return nil
}

// Close stops background work and flushes pending writes.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	s.mu.Unlock()

	if s.runnerStop != nil {
		s.runnerStop()
		s.runnerWG.Wait()
	}
	s.driver.Stop()
	if s.persister != nil {
		if started {
			s.persister.Schedule(s.State())
		}
		return s.persister.Close(ctx)
	}
	return nil
}

func (s *Store) load(ctx context.Context) (*model.AppState, bool) {
	seedFn := func() *model.AppState {
		st := s.seed(s.clock.Now())
		if settings := s.cfg.PomodoroSettings(); settings.Validate() == nil {
			st.Pomodoro = model.NewPomodoroState(settings)
		}
		return st
	}
	if s.persister == nil {
		return seedFn(), true
	}
	state, seeded, err := s.persister.Load(ctx, seedFn)
	if err != nil {
		s.logger.Warn().Err(err).Msg("app.Store.load: falling back to seed data")
	}
	return state, seeded
}

// persist schedules a save. Ticks that only count down are skipped.
func (s *Store) persist(prev, next *model.AppState, a action.Action) {
	if prev == next || s.persister == nil {
		return
	}
	if _, tick := a.(action.Tick); tick && !creditsFocus(prev, next) {
		return
	}
	s.persister.Schedule(next)
}

// creditsFocus reports whether a tick added focus time to a task or closed a
// focus session.
func creditsFocus(prev, next *model.AppState) bool {
	p := prev.Pomodoro
	if p.CurrentSession == model.SessionFocus && p.FocusedTaskID != "" {
		return true
	}
	return len(p.FocusHistory) != len(next.Pomodoro.FocusHistory)
}
