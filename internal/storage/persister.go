package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sandeepkv93/taskflow/internal/model"
)

const DefaultSaveDebounce = 500 * time.Millisecond

// Persister saves the latest AppState under KeyState, coalescing bursts of
// changes into one write per debounce window.
type Persister struct {
	repo     Repository
	clock    clockwork.Clock
	debounce time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	pending *model.AppState
	timer   clockwork.Timer
	gen     uint64
	closed  bool

	saveMu sync.Mutex
}

type PersisterOption func(*Persister)

func WithPersisterClock(c clockwork.Clock) PersisterOption {
	return func(p *Persister) {
		if c != nil {
			p.clock = c
		}
	}
}

func WithDebounce(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.debounce = d
		}
	}
}

func WithLogger(l zerolog.Logger) PersisterOption {
	return func(p *Persister) {
		p.logger = l
	}
}

func NewPersister(repo Repository, opts ...PersisterOption) *Persister {
	p := &Persister{
		repo:     repo,
		clock:    clockwork.NewRealClock(),
		debounce: DefaultSaveDebounce,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load returns the stored state, or seed() with seeded=true when nothing
// usable is stored. A malformed snapshot is logged and discarded. err is set
// only when the repository itself failed; the seed is still returned.
func (p *Persister) Load(ctx context.Context, seed func() *model.AppState) (state *model.AppState, seeded bool, err error) {
	raw, err := p.repo.Get(ctx, KeyState)
	switch {
	case errors.Is(err, ErrNotFound):
		return seed(), true, nil
	case err != nil:
		p.logger.Error().Err(err).Msg("storage.Persister.Load: read snapshot")
		return seed(), true, err
	}

	s, err := DecodeState([]byte(raw))
	switch {
	case err == nil:
		return s, false, nil
	case errors.Is(err, ErrEmptySnapshot):
		p.logger.Info().Msg("storage.Persister.Load: stored snapshot is empty, seeding")
	default:
		p.logger.Warn().Err(err).Msg("storage.Persister.Load: discarding malformed snapshot")
	}
	return seed(), true, nil
}

// Schedule queues s to be saved once no newer state arrives for the debounce
// window.
func (p *Persister) Schedule(s *model.AppState) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.pending = s
	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.timer = p.clock.AfterFunc(p.debounce, func() { p.fire(gen) })
}

// Flush writes any pending state now.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
	return p.flushPending(ctx)
}

// Close flushes and rejects later Schedule calls.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.Flush(ctx)
}

// Save writes s immediately, bypassing the debounce.
func (p *Persister) Save(ctx context.Context, s *model.AppState) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()
	return p.write(ctx, s)
}

func (p *Persister) fire(gen uint64) {
	p.mu.Lock()
	if gen == p.gen {
		p.timer = nil
	}
	p.mu.Unlock()
	if err := p.flushPending(context.Background()); err != nil {
		p.logger.Error().Err(err).Msg("storage.Persister.fire: save snapshot")
	}
}

func (p *Persister) flushPending(ctx context.Context) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	p.mu.Lock()
	s := p.pending
	p.pending = nil
	p.mu.Unlock()
	if s == nil {
		return nil
	}
	return p.write(ctx, s)
}

func (p *Persister) write(ctx context.Context, s *model.AppState) error {
	payload, err := EncodeState(s, p.clock.Now())
	if err != nil {
		return err
	}
	if err := p.repo.Put(ctx, KeyState, string(payload)); err != nil {
		return err
	}
	p.logger.Debug().Int("tasks", len(s.Tasks)).Int("bytes", len(payload)).Msg("storage.Persister: snapshot saved")
	return nil
}
