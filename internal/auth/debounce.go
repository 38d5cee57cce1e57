// ABOUTME: Trailing-edge debouncer for coalescing bursts of auth events
// ABOUTME: Only the last trigger within the quiet window produces an effect

package auth

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one invocation of the function
// passed to the final Trigger, after the window has elapsed with no further
// triggers. A zero or negative window runs the function synchronously, which
// one-shot CLI commands rely on.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn after the quiet window, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	if d.window <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
