// Package watcher reloads the outline when its backing file changes,
// coalescing editor write bursts into a single reload.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer delays a callback until a quiet period has passed. Repeated
// Call invocations within the window supersede earlier ones, so only
// the last callback runs.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a Debouncer with the given window. A zero
// window falls back to DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Call schedules fn to run once the window elapses without another Call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A later Call or Stop supersedes this invocation. Checking the
		// generation closes the race where Stop returns false because
		// the timer already fired.
		live := gen == d.gen
		if live {
			d.timer = nil
		}
		d.mu.Unlock()
		if live {
			fn()
		}
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the coalescing window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
