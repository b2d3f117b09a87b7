//go:build !linux && !darwin && !windows

package platform

import "time"

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return idleProvider{}
}

func (idleProvider) IdleDuration() (time.Duration, error) {
	return 0, ErrIdleUnsupported
}
