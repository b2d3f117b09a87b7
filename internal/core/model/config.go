package model

import "time"

// IdlePauseConfig controls automatic pausing after a period of inactivity.
type IdlePauseConfig struct {
	Enabled bool
	Timeout time.Duration
}

// SessionConfig contains runtime settings for the session clock.
// It is an immutable snapshot: hosts replace it wholesale on change.
type SessionConfig struct {
	WorkDuration      time.Duration
	ShortRestDuration time.Duration
	LongRestDuration  time.Duration

	ShowClock        bool
	ConfirmOnRestart bool

	IdlePause IdlePauseConfig
}
