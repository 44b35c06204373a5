package services

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period used by interactive search.
const DefaultDebounce = 160 * time.Millisecond

// Debouncer runs only the most recently armed action, once its delay has
// passed without another Arm call.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates an idle debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Arm schedules action after delay and discards any pending action.
func (d *Debouncer) Arm(delay time.Duration, action func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		// A timer that already fired when Stop was called must not run.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		action()
	})
}

// Cancel discards the pending action, if any, and reports whether one existed.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Pending reports whether an action is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
