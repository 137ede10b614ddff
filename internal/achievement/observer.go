package achievement

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
)

// Observer unlocks achievements as the state changes. Each newly satisfied
// achievement is dispatched once and announced once.
type Observer struct {
	dispatch func(action.Action)
	notifier notify.Notifier
	clock    clockwork.Clock
	defs     []Definition

	mu      sync.Mutex
	pending map[string]bool
}

func NewObserver(dispatch func(action.Action), notifier notify.Notifier, clock clockwork.Clock) *Observer {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Observer{
		dispatch: dispatch,
		notifier: notifier,
		clock:    clock,
		defs:     Definitions(),
		pending:  make(map[string]bool),
	}
}

// OnChange evaluates next and dispatches an unlock for every new achievement.
func (o *Observer) OnChange(_, next *model.AppState, _ action.Action) {
	if next == nil {
		return
	}
	o.settle(next)
	now := o.clock.Now()
	for _, d := range Evaluate(o.defs, next, now) {
		if !o.claim(d.ID) {
			continue
		}
		o.dispatch(action.UnlockAchievement{ID: d.ID})
		_ = o.notifier.Send(notify.Notification{
			Title: "Achievement unlocked",
			Body:  fmt.Sprintf("%s: %s", d.Title, d.Description),
			Level: notify.LevelSuccess,
			At:    now,
		})
	}
}

func (o *Observer) claim(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending[id] {
		return false
	}
	o.pending[id] = true
	return true
}

// settle forgets claims that the state now records as unlocked.
func (o *Observer) settle(s *model.AppState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for id := range o.pending {
		if s.IsUnlocked(id) {
			delete(o.pending, id)
		}
	}
}
