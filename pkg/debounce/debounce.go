// Package debounce collapses bursts of trigger requests into a single
// deferred run of a wrapped action.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiescence window used when no delay is configured.
const DefaultDelay = 150 * time.Millisecond

// Trigger wraps a zero-argument action. Each Request supersedes any pending
// schedule, so the action runs at most once per window of quiescence and
// observes state as of the moment it finally fires, not of any particular
// request. Construct with New; the zero value has no action to run.
type Trigger struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// New returns a Trigger that runs fn once per quiescence window of the given
// delay. A non-positive delay falls back to DefaultDelay.
func New(delay time.Duration, fn func()) *Trigger {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Trigger{delay: delay, fn: fn}
}

// Request cancels any pending schedule and arms a fresh one, so the action
// fires after a full delay measured from the most recent request. The first
// request still waits out the whole delay.
func (t *Trigger) Request() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, t.fire)
}

func (t *Trigger) fire() {
	t.mu.Lock()
	t.timer = nil
	fn := t.fn
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels any pending run. Safe to call repeatedly and required at
// teardown so a released owner never sees a late callback.
func (t *Trigger) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}

// Pending reports whether a run is currently scheduled.
func (t *Trigger) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
