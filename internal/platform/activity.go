package platform

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultPollInterval is how often the poller samples OS idle time.
const DefaultPollInterval = 2 * time.Second

// ActivityPoller turns OS idle time into discrete activity signals: input
// seen during the last interval counts as one activity event.
type ActivityPoller struct {
	provider   IdleProvider
	interval   time.Duration
	onActivity func()
}

// NewActivityPoller creates a poller calling onActivity when input is seen.
func NewActivityPoller(provider IdleProvider, interval time.Duration, onActivity func()) *ActivityPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ActivityPoller{provider: provider, interval: interval, onActivity: onActivity}
}

// Run polls until ctx is done. It returns ErrIdleUnsupported when the
// platform cannot report idle time.
func (poller *ActivityPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(poller.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			idle, err := poller.provider.IdleDuration()
			if err != nil {
				if errors.Is(err, ErrIdleUnsupported) {
					return err
				}
				slog.Warn("idle poll failed", "error", err)
				continue
			}
			if idle < poller.interval {
				poller.onActivity()
			}
		}
	}
}
