package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		showClock bool
		want      string
	}{
		{"work with clock", State{Phase: PhaseWork, Status: StatusRunning, Remaining: 1500 * time.Second}, true, "🟢 Work 25:00"},
		{"work without clock", State{Phase: PhaseWork, Status: StatusRunning, Remaining: 61 * time.Second}, false, "🟢 Work"},
		{"first break", State{Phase: PhaseShortRest, Status: StatusRunning, CycleCount: 1, Remaining: 299 * time.Second}, true, "🔴 1st Break 04:59"},
		{"second break", State{Phase: PhaseShortRest, Status: StatusRunning, CycleCount: 2, Remaining: 9 * time.Second}, true, "🔴 2nd Break 00:09"},
		{"third break", State{Phase: PhaseShortRest, Status: StatusRunning, CycleCount: 3}, false, "🔴 3rd Break"},
		{"long break", State{Phase: PhaseLongRest, Status: StatusRunning, CycleCount: 0, Remaining: 1200 * time.Second}, true, "🔴 Long Break 20:00"},
		{"paused always shows clock", State{Phase: PhaseWork, Status: StatusPaused, Remaining: 90 * time.Second}, false, "⏸️ Paused 01:30"},
		{"stopped", State{Phase: PhaseShortRest, Status: StatusStopped, Remaining: 5 * time.Second}, true, "⏹️ Stopped 00:05"},
		{"long durations keep minutes", State{Phase: PhaseWork, Status: StatusIdle, Remaining: 125 * time.Minute}, true, "🟢 Work 125:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.state, tt.showClock))
		})
	}
}

func TestEmphasisFor(t *testing.T) {
	assert.Equal(t, EmphasisWork, EmphasisFor(State{Phase: PhaseWork}))
	assert.Equal(t, EmphasisRest, EmphasisFor(State{Phase: PhaseShortRest, Status: StatusPaused}))
	assert.Equal(t, EmphasisRest, EmphasisFor(State{Phase: PhaseLongRest}))
}

func TestWorkCompleteMessage(t *testing.T) {
	assert.Equal(t, "🔴 2nd Pomodoro completed! Time for a short break.", workCompleteMessage(2, 20*time.Minute))
	assert.Equal(t, "🔴 4th Pomodoro completed! Time for a 20 minute long break.", workCompleteMessage(0, 20*time.Minute))
	assert.Equal(t, "🔴 4th Pomodoro completed! Time for a 7.5 minute long break.", workCompleteMessage(0, 450*time.Second))
}
