package progression

import (
	"sync"
	"time"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
)

// PendingSwitch is the one deferred, cancellable timer between a
// progression decision and the actual kata switch. Navigating away during
// the delay window cancels the switch; the policy is cancel, not
// complete-regardless, applied everywhere.
type PendingSwitch struct {
	to     *kata.Kata
	timer  *time.Timer
	fired  chan struct{}
	cancel chan struct{}
	once   sync.Once
}

// Schedule arms the auto-continue timer for a switch to the given kata.
func (s *Selector) Schedule(to *kata.Kata) *PendingSwitch {
	p := &PendingSwitch{
		to:     to,
		fired:  make(chan struct{}),
		cancel: make(chan struct{}),
	}
	p.timer = time.AfterFunc(s.settings.Delay, func() { close(p.fired) })
	return p
}

// Wait blocks until the delay elapses or the switch is cancelled.
// Returns the target kata, or nil when cancelled.
func (p *PendingSwitch) Wait() *kata.Kata {
	select {
	case <-p.fired:
		return p.to
	case <-p.cancel:
		return nil
	}
}

// Cancel stops the pending switch. Safe to call repeatedly, and after the
// timer has already fired, in which case it has no effect on waiters that
// already observed the switch.
func (p *PendingSwitch) Cancel() {
	p.once.Do(func() {
		p.timer.Stop()
		close(p.cancel)
	})
}

// Target returns the kata this switch leads to.
func (p *PendingSwitch) Target() *kata.Kata {
	return p.to
}
