package session

import "time"

// Phase is the purpose of the current countdown.
type Phase string

const (
	PhaseWork      Phase = "work"
	PhaseShortRest Phase = "short_rest"
	PhaseLongRest  Phase = "long_rest"
)

// IsRest reports whether the phase is either kind of rest.
func (phase Phase) IsRest() bool {
	return phase == PhaseShortRest || phase == PhaseLongRest
}

// Status is the run state of the countdown.
type Status string

const (
	// StatusIdle means the clock was created but never started.
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusStopped Status = "stopped"
)

// Emphasis selects how the display styles the status text.
type Emphasis string

const (
	EmphasisWork Emphasis = "work"
	EmphasisRest Emphasis = "rest"
)

// Sound names an announcement cue.
type Sound string

const (
	SoundStart Sound = "start"
	SoundEnd   Sound = "end"
)

// CyclePhases is the number of work phases that end with a long rest.
const CyclePhases = 4

// State is a point-in-time copy of the clock's session state.
type State struct {
	Phase        Phase
	Status       Status
	CycleCount   int
	Remaining    time.Duration
	PausedByIdle bool
}

// Running reports whether the countdown is ticking.
func (state State) Running() bool {
	return state.Status == StatusRunning
}

// RemainingSeconds returns the remaining time in whole seconds.
func (state State) RemainingSeconds() int {
	return int(state.Remaining / time.Second)
}
