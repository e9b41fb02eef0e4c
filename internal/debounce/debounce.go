// Package debounce collapses bursts of trigger calls into a single delayed
// invocation of the most recent callback.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a callback to run after a quiet period with no new
// triggers. Each Trigger call cancels any pending callback and arms the
// timer again, so the callback runs at most once per quiescent window and
// not at all while triggers keep arriving faster than the delay. Invocation
// is fire-and-forget: the callback runs on a timer goroutine and nothing is
// returned to the caller.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New creates a Debouncer with the given quiet-period delay.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger cancels any pending callback and schedules fn to run after the
// delay elapses with no further triggers. Only the fn from the most recent
// trigger runs. Safe for concurrent use.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending callback and prevents future triggers from
// scheduling. A callback already started is not interrupted.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
