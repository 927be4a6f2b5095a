// Package sos tracks the transient "help requested" indicator of one shell.
package sos

import (
	"sync"
	"time"
)

// ResetAfter is how long the indicator stays active after a trigger.
const ResetAfter = 3 * time.Second

// Clock schedules the reset. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending reset.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Option configures an Indicator.
type Option func(*Indicator)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(i *Indicator) {
		if clock != nil {
			i.clock = clock
		}
	}
}

// WithDelay replaces ResetAfter.
func WithDelay(d time.Duration) Option {
	return func(i *Indicator) {
		if d > 0 {
			i.delay = d
		}
	}
}

// OnChange registers fn to observe active-state transitions. fn runs
// without the indicator lock held, possibly on the timer goroutine.
func OnChange(fn func(active bool)) Option {
	return func(i *Indicator) {
		if fn != nil {
			i.listeners = append(i.listeners, fn)
		}
	}
}

// Indicator is the SOS active flag with its cancellable reset timer.
//
// Triggering while already active restarts the countdown, so the indicator
// stays on for the full delay after the most recent trigger.
type Indicator struct {
	mu         sync.Mutex
	clock      Clock
	delay      time.Duration
	active     bool
	closed     bool
	pending    Timer
	generation uint64
	listeners  []func(bool)
}

// New returns an inactive indicator.
func New(opts ...Option) *Indicator {
	i := &Indicator{clock: realClock{}, delay: ResetAfter}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Trigger activates the indicator and (re)schedules its reset. It returns
// false after Close.
func (i *Indicator) Trigger() bool {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return false
	}
	if i.pending != nil {
		i.pending.Stop()
	}
	i.generation++
	generation := i.generation
	changed := !i.active
	i.active = true
	i.pending = i.clock.AfterFunc(i.delay, func() { i.expire(generation) })
	listeners := i.listeners
	i.mu.Unlock()

	if changed {
		notify(listeners, true)
	}
	return true
}

// Active reports whether the indicator is on.
func (i *Indicator) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.active
}

// Close cancels any pending reset and turns the indicator off without
// notifying listeners. Close is idempotent.
func (i *Indicator) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	i.closed = true
	i.generation++
	if i.pending != nil {
		i.pending.Stop()
		i.pending = nil
	}
	i.active = false
}

// expire runs on the timer goroutine. A stale generation means the timer was
// superseded by a later trigger or by Close after Stop lost the race.
func (i *Indicator) expire(generation uint64) {
	i.mu.Lock()
	if generation != i.generation || !i.active {
		i.mu.Unlock()
		return
	}
	i.active = false
	i.pending = nil
	listeners := i.listeners
	i.mu.Unlock()

	notify(listeners, false)
}

func notify(listeners []func(bool), active bool) {
	for _, fn := range listeners {
		fn(active)
	}
}
