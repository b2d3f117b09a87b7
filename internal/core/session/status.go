package session

import (
	"fmt"
	"strconv"
	"time"
)

// NotificationDuration is how long phase and idle announcements stay visible.
const NotificationDuration = 3 * time.Second

const (
	messageRestComplete = "🟢 Break is over! Time to get back to work."
	messageIdlePaused   = "Pomodoro paused due to inactivity."
	messageIdleResumed  = "Pomodoro timer resumed."
	messageRestarted    = "Pomodoro timer restarted."
	messageConfigured   = "Pomodoro settings updated. Changes will apply to the next session."
)

// StatusText formats the indicator text for a state.
func StatusText(state State, showClock bool) string {
	clock := formatClock(state.Remaining)

	switch state.Status {
	case StatusPaused:
		return "⏸️ Paused " + clock
	case StatusStopped:
		return "⏹️ Stopped " + clock
	}

	var text string
	if state.Phase.IsRest() {
		text = fmt.Sprintf("🔴 %s Break", breakLabel(state.CycleCount))
	} else {
		text = "🟢 Work"
	}
	if showClock {
		text += " " + clock
	}
	return text
}

// EmphasisFor returns the display emphasis for a state.
func EmphasisFor(state State) Emphasis {
	if state.Phase.IsRest() {
		return EmphasisRest
	}
	return EmphasisWork
}

// IdleResumedMessage is the announcement for an automatic resume.
func IdleResumedMessage() string {
	return messageIdleResumed
}

func formatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// breakLabel names a rest by its position in the cycle; cycleCount already
// counts the work phase that just ended.
func breakLabel(cycleCount int) string {
	if cycleCount%CyclePhases == 0 {
		return "Long"
	}
	return ordinal(cycleCount % CyclePhases)
}

func ordinal(value int) string {
	switch value {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(value) + "th"
	}
}

func workCompleteMessage(cycleCount int, longRest time.Duration) string {
	position := cycleCount % CyclePhases
	if position == 0 {
		position = CyclePhases
	}
	restKind := "short"
	if cycleCount%CyclePhases == 0 {
		minutes := strconv.FormatFloat(longRest.Minutes(), 'f', -1, 64)
		restKind = minutes + " minute long"
	}
	return fmt.Sprintf("🔴 %s Pomodoro completed! Time for a %s break.", ordinal(position), restKind)
}
