// Package schedule provides the timer primitives the session core runs on:
// a one-shot "fire after d" and a repeating "fire every d".
package schedule

import (
	"sync"
	"time"
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler arranges for callbacks to run later.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
	Every(interval time.Duration, fn func()) Timer
}

// System schedules on the real clock.
type System struct{}

// AfterFunc runs fn once after delay.
func (System) AfterFunc(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

// Every runs fn on each interval until stopped.
func (System) Every(interval time.Duration, fn func()) Timer {
	repeating := &repeatingTimer{stopCh: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go repeating.run(ticker, fn)
	return repeating
}

type repeatingTimer struct {
	once   sync.Once
	stopCh chan struct{}
}

func (timer *repeatingTimer) run(ticker *time.Ticker, fn func()) {
	defer ticker.Stop()

	for {
		select {
		case <-timer.stopCh:
			return
		case <-ticker.C:
			fn()
		}
	}
}

func (timer *repeatingTimer) Stop() bool {
	stopped := false
	timer.once.Do(func() {
		close(timer.stopCh)
		stopped = true
	})
	return stopped
}
