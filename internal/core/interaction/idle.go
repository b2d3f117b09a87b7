package interaction

import (
	"log/slog"
	"time"

	"pomodoro/internal/core/session"
)

// OnActivity handles one raw activity signal. An idle-paused clock resumes;
// otherwise an armed idle deadline is pushed back.
func (gate *Gate) OnActivity() {
	gate.mu.Lock()
	disposed := gate.disposed
	gate.mu.Unlock()
	if disposed {
		return
	}

	if gate.clock.Snapshot().PausedByIdle {
		gate.clock.Resume()
		if gate.options.Notifier != nil {
			gate.options.Notifier.Notify(session.IdleResumedMessage(), session.NotificationDuration)
		}
		return
	}

	gate.mu.Lock()
	defer gate.mu.Unlock()
	if gate.idle != nil && !gate.disposed {
		gate.scheduleIdleLocked(gate.idleTimeout)
	}
}

// Arm starts idle tracking, replacing any earlier deadline.
func (gate *Gate) Arm(timeout time.Duration) {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	if gate.disposed {
		return
	}
	gate.scheduleIdleLocked(timeout)
}

// Disarm cancels idle tracking.
func (gate *Gate) Disarm() {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	gate.cancelIdleLocked()
}

// Armed reports whether an idle deadline is live.
func (gate *Gate) Armed() bool {
	gate.mu.Lock()
	defer gate.mu.Unlock()
	return gate.idle != nil
}

func (gate *Gate) scheduleIdleLocked(timeout time.Duration) {
	gate.cancelIdleLocked()
	gate.idleTimeout = timeout
	generation := gate.idleGen
	gate.idle = gate.scheduler.AfterFunc(timeout, func() {
		gate.fireIdle(generation)
	})
}

func (gate *Gate) cancelIdleLocked() {
	gate.idleGen++
	if gate.idle != nil {
		gate.idle.Stop()
		gate.idle = nil
	}
}

func (gate *Gate) fireIdle(generation uint64) {
	gate.mu.Lock()
	if generation != gate.idleGen || gate.idle == nil || gate.disposed {
		gate.mu.Unlock()
		return
	}
	gate.idle = nil
	gate.mu.Unlock()

	slog.Debug("idle timeout elapsed")
	gate.clock.Pause(true)
}
