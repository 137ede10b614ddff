package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskflow/internal/action"
	"github.com/sandeepkv93/taskflow/internal/model"
	"github.com/sandeepkv93/taskflow/internal/notify"
)

// Changes wakes the program when the store transitions or a notification is
// sent. Signals coalesce: at most one is pending, and senders never block.
type Changes struct {
	ch chan struct{}
}

func NewChanges() *Changes {
	return &Changes{ch: make(chan struct{}, 1)}
}

// OnChange matches the store listener signature.
func (c *Changes) OnChange(_, _ *model.AppState, _ action.Action) {
	c.signal()
}

// Send lets Changes sit in a notifier fan-out so toasts repaint.
func (c *Changes) Send(notify.Notification) error {
	c.signal()
	return nil
}

func (c *Changes) signal() {
	select {
	case c.ch <- struct{}{}:
	default:
	}
}

func waitForChangeCmd(c *Changes) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		<-c.ch
		return StateChangedMsg{}
	}
}
