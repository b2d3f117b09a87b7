package term

import (
	"time"

	"pomodoro/internal/core/session"
)

// Message types delivered to the bubbletea program.
type (
	// statusMsg carries a new indicator text.
	statusMsg struct {
		Text     string
		Emphasis session.Emphasis
	}

	// noticeMsg carries an announcement that expires after Duration.
	noticeMsg struct {
		Text     string
		Duration time.Duration
	}

	// noticeExpiredMsg clears the notice with the matching ID.
	noticeExpiredMsg struct {
		ID int
	}

	// confirmMsg asks a yes/no question; the answer is sent on Reply.
	confirmMsg struct {
		Prompt string
		Reply  chan<- bool
	}
)
