package schedule

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by virtual time. Callbacks only run inside
// Advance, on the caller's goroutine, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	entries []*manualEntry
}

type manualEntry struct {
	owner    *Manual
	at       time.Time
	interval time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewManual creates a manual scheduler starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (manual *Manual) Now() time.Time {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

// AfterFunc schedules fn once after delay.
func (manual *Manual) AfterFunc(delay time.Duration, fn func()) Timer {
	return manual.add(delay, 0, fn)
}

// Every schedules fn on each interval until stopped.
func (manual *Manual) Every(interval time.Duration, fn func()) Timer {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return manual.add(interval, interval, fn)
}

// Pending reports how many callbacks are still scheduled.
func (manual *Manual) Pending() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	manual.compactLocked()
	return len(manual.entries)
}

// Advance moves virtual time forward by delta, firing every callback whose
// deadline falls inside the window. A callback stopped by an earlier one in
// the same window does not fire.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now.Add(delta)
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		next := manual.nextDueLocked(target)
		if next == nil {
			manual.now = target
			manual.compactLocked()
			manual.mu.Unlock()
			return
		}
		manual.now = next.at
		if next.interval > 0 {
			next.at = next.at.Add(next.interval)
		} else {
			next.done = true
		}
		fn := next.fn
		manual.mu.Unlock()

		fn()
	}
}

func (manual *Manual) add(delay, interval time.Duration, fn func()) Timer {
	manual.mu.Lock()
	defer manual.mu.Unlock()

	if delay < 0 {
		delay = 0
	}
	manual.seq++
	entry := &manualEntry{
		owner:    manual,
		at:       manual.now.Add(delay),
		interval: interval,
		seq:      manual.seq,
		fn:       fn,
	}
	manual.entries = append(manual.entries, entry)
	return entry
}

func (manual *Manual) nextDueLocked(target time.Time) *manualEntry {
	var next *manualEntry
	for _, entry := range manual.entries {
		if entry.done || entry.at.After(target) {
			continue
		}
		if next == nil || entry.at.Before(next.at) || (entry.at.Equal(next.at) && entry.seq < next.seq) {
			next = entry
		}
	}
	return next
}

func (manual *Manual) compactLocked() {
	live := manual.entries[:0]
	for _, entry := range manual.entries {
		if !entry.done {
			live = append(live, entry)
		}
	}
	for index := len(live); index < len(manual.entries); index++ {
		manual.entries[index] = nil
	}
	manual.entries = live
}

func (entry *manualEntry) Stop() bool {
	entry.owner.mu.Lock()
	defer entry.owner.mu.Unlock()
	if entry.done {
		return false
	}
	entry.done = true
	return true
}
