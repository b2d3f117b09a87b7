package session

import "time"

// Display renders the always-visible status indicator. Render is called with
// the clock's lock held and must not call back into the clock.
type Display interface {
	Render(text string, emphasis Emphasis)
}

// Notifier shows a short, auto-dismissing message.
type Notifier interface {
	Notify(message string, duration time.Duration)
}

// SoundPlayer plays an announcement cue. Failures stay inside the player.
type SoundPlayer interface {
	Play(sound Sound)
}

// IdleTracker is armed while inactivity should pause the clock.
type IdleTracker interface {
	Arm(timeout time.Duration)
	Disarm()
}

type nopDisplay struct{}

func (nopDisplay) Render(string, Emphasis) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, time.Duration) {}

type nopSound struct{}

func (nopSound) Play(Sound) {}

type nopIdle struct{}

func (nopIdle) Arm(time.Duration) {}

func (nopIdle) Disarm() {}
