package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/action"
)

const DefaultTickInterval = time.Second

// Driver dispatches action.Tick at a fixed interval while the pomodoro timer
// runs. At most one ticking goroutine is live at a time.
type Driver struct {
	clock    clockwork.Clock
	interval time.Duration
	dispatch func(action.Action)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type DriverOption func(*Driver)

func WithDriverClock(c clockwork.Clock) DriverOption {
	return func(d *Driver) {
		if c != nil {
			d.clock = c
		}
	}
}

func WithTickInterval(interval time.Duration) DriverOption {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

func NewDriver(dispatch func(action.Action), opts ...DriverOption) *Driver {
	d := &Driver{
		clock:    clockwork.NewRealClock(),
		interval: DefaultTickInterval,
		dispatch: dispatch,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Sync starts ticking when running is true and no ticker is live, and stops
// the live ticker when running is false. It never waits for the ticking
// goroutine, so it is safe to call from code the ticker itself dispatched into.
func (d *Driver) Sync(running bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case running && d.cancel == nil:
		ctx, cancel := context.WithCancel(context.Background())
		d.cancel = cancel
		d.wg.Add(1)
		go d.run(ctx)
	case !running && d.cancel != nil:
		d.cancel()
		d.cancel = nil
	}
}

func (d *Driver) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Stop halts ticking and waits for every ticking goroutine to exit.
func (d *Driver) Stop() {
	d.Sync(false)
	d.wg.Wait()
}

func (d *Driver) run(ctx context.Context) {
	defer d.wg.Done()
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}
			d.dispatch(action.Tick{})
		}
	}
}
