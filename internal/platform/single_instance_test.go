package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	name := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer func() { _ = guard.Release() }()

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NotEmpty(t, again.Address())
	require.NoError(t, again.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("pomodoro")
	assert.Equal(t, first, portFromName("pomodoro"))
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
}

func TestCommandsReachRunningInstance(t *testing.T) {
	name := "pomodoro-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	received := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- guard.Serve(ctx, func(_ context.Context, command string) error {
			received <- command
			if command == "skip" {
				return errors.New("unknown command")
			}
			return nil
		})
	}()

	sendCtx, sendCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer sendCancel()
	require.NoError(t, SendCommand(sendCtx, name, "togglePause"))
	assert.Equal(t, "togglePause", <-received)

	err = SendCommand(sendCtx, name, "skip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, guard.Release())
}

func TestSendCommandWithoutInstance(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := SendCommand(ctx, "pomodoro-test-nobody-"+t.Name(), "start")
	assert.ErrorIs(t, err, ErrNotRunning)
}
