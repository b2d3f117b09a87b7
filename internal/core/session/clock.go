package session

import (
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/schedule"
)

// Options contains runtime collaborators for the Clock. Nil collaborators
// are replaced with no-ops.
type Options struct {
	TickInterval time.Duration
	Display      Display
	Notifier     Notifier
	Sound        SoundPlayer
}

// Clock is the session state machine: it counts down the current phase,
// decides the work/rest cadence and reports every observable change to the
// display.
type Clock struct {
	mu        sync.Mutex
	config    model.SessionConfig
	options   Options
	scheduler schedule.Scheduler
	idle      IdleTracker

	phase        Phase
	status       Status
	cycleCount   int
	remaining    time.Duration
	pausedByIdle bool

	ticker     schedule.Timer
	generation uint64
	disposed   bool
}

// New creates a Clock in the initial Work state, not yet started, and
// renders it once.
func New(config model.SessionConfig, scheduler schedule.Scheduler, options Options) *Clock {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Display == nil {
		options.Display = nopDisplay{}
	}
	if options.Notifier == nil {
		options.Notifier = nopNotifier{}
	}
	if options.Sound == nil {
		options.Sound = nopSound{}
	}
	if scheduler == nil {
		scheduler = schedule.System{}
	}

	clock := &Clock{
		config:    config,
		options:   options,
		scheduler: scheduler,
		idle:      nopIdle{},
		phase:     PhaseWork,
		status:    StatusIdle,
		remaining: config.WorkDuration,
	}
	clock.mu.Lock()
	clock.renderLocked()
	clock.mu.Unlock()
	return clock
}

// SetIdleTracker injects the idle tracker armed during running work phases.
func (clock *Clock) SetIdleTracker(tracker IdleTracker) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if tracker == nil {
		tracker = nopIdle{}
	}
	clock.idle.Disarm()
	clock.idle = tracker
	clock.syncIdleLocked()
}

// Snapshot returns a copy of the current session state.
func (clock *Clock) Snapshot() State {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.stateLocked()
}

// Config returns the configuration snapshot in effect.
func (clock *Clock) Config() model.SessionConfig {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.config
}

// Start begins the countdown. A never-started clock begins a fresh Work
// phase; a paused or stopped clock continues its current phase.
func (clock *Clock) Start() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.startLocked()
}

func (clock *Clock) startLocked() {
	if clock.disposed || clock.status == StatusRunning {
		return
	}
	if clock.status == StatusIdle {
		clock.cycleCount = 0
		clock.beginPhaseLocked(PhaseWork, true)
		return
	}
	clock.runLocked()
}

// Pause stops the countdown without changing the remaining time. An idle
// pause only applies during a Work phase.
func (clock *Clock) Pause(byIdle bool) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.pauseLocked(byIdle)
}

func (clock *Clock) pauseLocked(byIdle bool) {
	if clock.disposed || clock.status != StatusRunning {
		return
	}
	if byIdle && clock.phase != PhaseWork {
		return
	}
	clock.cancelTickLocked()
	clock.status = StatusPaused
	clock.pausedByIdle = byIdle
	clock.syncIdleLocked()
	clock.renderLocked()

	if byIdle {
		slog.Debug("session paused for inactivity", "remaining", clock.remaining)
		clock.options.Notifier.Notify(messageIdlePaused, NotificationDuration)
	}
}

// Resume continues a paused countdown from the stored remaining time.
func (clock *Clock) Resume() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.disposed || clock.status != StatusPaused {
		return
	}
	clock.runLocked()
}

// TogglePause is the manual pause/resume action. On a clock that is not
// counting at all it starts instead.
func (clock *Clock) TogglePause() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	switch clock.status {
	case StatusRunning:
		clock.pauseLocked(false)
	case StatusPaused:
		if !clock.disposed {
			clock.runLocked()
		}
	default:
		clock.startLocked()
	}
}

// Restart discards the remaining time and runs the current phase again from
// its full configured duration. When the configuration asks for
// confirmation, an unconfirmed restart is ignored. It reports whether the
// restart happened.
func (clock *Clock) Restart(confirmed bool) bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.disposed {
		return false
	}
	if clock.config.ConfirmOnRestart && !confirmed {
		return false
	}
	clock.beginPhaseLocked(clock.phase, false)
	clock.options.Notifier.Notify(messageRestarted, NotificationDuration)
	return true
}

// Stop cancels the countdown and idle tracking but keeps the phase and the
// remaining time.
func (clock *Clock) Stop() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.disposed || (clock.status != StatusRunning && clock.status != StatusPaused) {
		return
	}
	clock.cancelTickLocked()
	clock.status = StatusStopped
	clock.pausedByIdle = false
	clock.syncIdleLocked()
	clock.renderLocked()
}

// ApplyConfig replaces the configuration. A countdown in flight keeps its
// remaining time; new durations apply from the next phase on.
func (clock *Clock) ApplyConfig(config model.SessionConfig) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.disposed {
		return
	}
	previous := clock.config
	clock.config = config

	if clock.status == StatusIdle {
		clock.remaining = config.WorkDuration
	}
	if previous.IdlePause != config.IdlePause {
		clock.syncIdleLocked()
	}
	clock.renderLocked()
	clock.options.Notifier.Notify(messageConfigured, NotificationDuration)
}

// Dispose stops all scheduling. Every later call is a no-op.
func (clock *Clock) Dispose() {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if clock.disposed {
		return
	}
	clock.disposed = true
	clock.cancelTickLocked()
	clock.idle.Disarm()
}

func (clock *Clock) tick(generation uint64) {
	clock.mu.Lock()
	defer clock.mu.Unlock()

	if generation != clock.generation || clock.status != StatusRunning || clock.disposed {
		return
	}
	clock.remaining -= clock.options.TickInterval
	if clock.remaining <= 0 {
		clock.remaining = 0
		clock.completePhaseLocked()
		return
	}
	clock.renderLocked()
}

func (clock *Clock) completePhaseLocked() {
	clock.cancelTickLocked()
	clock.options.Sound.Play(SoundEnd)

	if clock.phase != PhaseWork {
		clock.options.Notifier.Notify(messageRestComplete, NotificationDuration)
		clock.beginPhaseLocked(PhaseWork, true)
		return
	}

	clock.cycleCount = (clock.cycleCount + 1) % CyclePhases
	next := PhaseShortRest
	if clock.cycleCount == 0 {
		next = PhaseLongRest
	}
	clock.options.Notifier.Notify(workCompleteMessage(clock.cycleCount, clock.config.LongRestDuration), NotificationDuration)
	clock.beginPhaseLocked(next, true)
}

func (clock *Clock) beginPhaseLocked(phase Phase, announce bool) {
	clock.cancelTickLocked()
	clock.phase = phase
	clock.remaining = clock.durationLocked(phase)
	slog.Debug("session phase started", "phase", phase, "cycle", clock.cycleCount, "duration", clock.remaining)
	if announce {
		clock.options.Sound.Play(SoundStart)
	}
	clock.runLocked()
}

func (clock *Clock) runLocked() {
	clock.cancelTickLocked()
	clock.status = StatusRunning
	clock.pausedByIdle = false

	generation := clock.generation
	clock.ticker = clock.scheduler.Every(clock.options.TickInterval, func() {
		clock.tick(generation)
	})
	clock.syncIdleLocked()
	clock.renderLocked()
}

func (clock *Clock) cancelTickLocked() {
	clock.generation++
	if clock.ticker != nil {
		clock.ticker.Stop()
		clock.ticker = nil
	}
}

func (clock *Clock) syncIdleLocked() {
	idlePause := clock.config.IdlePause
	if idlePause.Enabled && clock.status == StatusRunning && clock.phase == PhaseWork && !clock.disposed {
		clock.idle.Arm(idlePause.Timeout)
		return
	}
	clock.idle.Disarm()
}

func (clock *Clock) durationLocked(phase Phase) time.Duration {
	switch phase {
	case PhaseShortRest:
		return clock.config.ShortRestDuration
	case PhaseLongRest:
		return clock.config.LongRestDuration
	default:
		return clock.config.WorkDuration
	}
}

func (clock *Clock) stateLocked() State {
	return State{
		Phase:        clock.phase,
		Status:       clock.status,
		CycleCount:   clock.cycleCount,
		Remaining:    clock.remaining,
		PausedByIdle: clock.pausedByIdle,
	}
}

func (clock *Clock) renderLocked() {
	state := clock.stateLocked()
	clock.options.Display.Render(StatusText(state, clock.config.ShowClock), EmphasisFor(state))
}
