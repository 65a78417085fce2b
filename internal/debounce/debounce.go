// Package debounce delays an action until input has been quiet for a while.
package debounce

import (
	"sync"
	"time"
)

// DefaultWait is the quiet period used by the search inputs
const DefaultWait = 300 * time.Millisecond

// Debouncer runs fn once the quiet period has elapsed since the last Trigger.
// Each Trigger cancels the pending run and schedules a new one.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func()
	timer *time.Timer
	gen   uint64
}

// New creates a debouncer. A non-positive wait uses DefaultWait.
func New(wait time.Duration, fn func()) *Debouncer {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &Debouncer{wait: wait, fn: fn}
}

// Trigger cancels any pending run and schedules fn after the quiet period
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Stop cancels the pending run
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

func (d *Debouncer) cancelLocked() {
	// A timer that already fired may be blocked on mu; bumping gen makes it a no-op
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
