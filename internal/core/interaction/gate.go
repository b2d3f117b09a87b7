// Package interaction turns raw user signals into session commands: clicks
// into single or double activations, and activity into idle pause/resume.
package interaction

import (
	"sync"
	"time"

	"pomodoro/internal/core/schedule"
	"pomodoro/internal/core/session"
)

// DefaultWindow is the span in which a second activation counts as a double.
const DefaultWindow = 250 * time.Millisecond

// Clock is the part of the session clock the gate drives.
type Clock interface {
	Snapshot() session.State
	Pause(byIdle bool)
	Resume()
}

// Options configures a Gate.
type Options struct {
	Window   time.Duration
	OnSingle func()
	OnDouble func()
	Notifier session.Notifier
}

// Gate disambiguates activations and tracks inactivity. It never calls the
// clock while holding its own lock, so the clock may call Arm and Disarm
// with the clock's lock held.
type Gate struct {
	mu        sync.Mutex
	clock     Clock
	scheduler schedule.Scheduler
	options   Options

	pending    schedule.Timer
	pendingGen uint64

	idle        schedule.Timer
	idleGen     uint64
	idleTimeout time.Duration

	disposed bool
}

// New creates a Gate for clock.
func New(clock Clock, scheduler schedule.Scheduler, options Options) *Gate {
	if options.Window <= 0 {
		options.Window = DefaultWindow
	}
	if options.OnSingle == nil {
		options.OnSingle = func() {}
	}
	if options.OnDouble == nil {
		options.OnDouble = func() {}
	}
	if scheduler == nil {
		scheduler = schedule.System{}
	}
	return &Gate{
		clock:     clock,
		scheduler: scheduler,
		options:   options,
	}
}

// OnActivation handles one raw activation. The first one waits out the
// window and then fires OnSingle; a second one inside the window cancels it
// and fires OnDouble at once.
func (gate *Gate) OnActivation() {
	gate.mu.Lock()
	if gate.disposed {
		gate.mu.Unlock()
		return
	}

	if gate.pending != nil {
		gate.cancelPendingLocked()
		gate.mu.Unlock()
		gate.options.OnDouble()
		return
	}

	gate.pendingGen++
	generation := gate.pendingGen
	gate.pending = gate.scheduler.AfterFunc(gate.options.Window, func() {
		gate.firePending(generation)
	})
	gate.mu.Unlock()
}

// Dispose cancels pending activation and idle timers.
func (gate *Gate) Dispose() {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	gate.disposed = true
	gate.cancelPendingLocked()
	gate.cancelIdleLocked()
}

func (gate *Gate) firePending(generation uint64) {
	gate.mu.Lock()
	if generation != gate.pendingGen || gate.pending == nil || gate.disposed {
		gate.mu.Unlock()
		return
	}
	gate.pending = nil
	gate.mu.Unlock()

	gate.options.OnSingle()
}

func (gate *Gate) cancelPendingLocked() {
	gate.pendingGen++
	if gate.pending != nil {
		gate.pending.Stop()
		gate.pending = nil
	}
}
