package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/interaction"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/core/session"
)

type scriptedConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (confirmer *scriptedConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	confirmer.prompts = append(confirmer.prompts, prompt)
	return confirmer.answer, confirmer.err
}

func testConfig(confirm bool) model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:      25 * time.Minute,
		ShortRestDuration: 5 * time.Minute,
		LongRestDuration:  20 * time.Minute,
		ShowClock:         true,
		ConfirmOnRestart:  confirm,
		IdlePause:         model.IdlePauseConfig{Enabled: true, Timeout: time.Minute},
	}
}

func newTestApp(t *testing.T, config model.SessionConfig, confirmer Confirmer) (*App, *schedule.Manual) {
	t.Helper()
	manual := schedule.NewManual(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	instance := New(config, manual, Collaborators{Confirmer: confirmer}, Options{})
	t.Cleanup(instance.Close)
	return instance, manual
}

func TestSingleClickTogglesPause(t *testing.T) {
	instance, manual := newTestApp(t, testConfig(false), nil)
	instance.Start()

	instance.OnActivation()
	manual.Advance(interaction.DefaultWindow)
	assert.Equal(t, session.StatusPaused, instance.Clock().Snapshot().Status)

	instance.OnActivation()
	manual.Advance(interaction.DefaultWindow)
	assert.True(t, instance.Clock().Snapshot().Running())
}

func TestDoubleClickRestarts(t *testing.T) {
	instance, manual := newTestApp(t, testConfig(false), nil)
	instance.Start()
	manual.Advance(30 * time.Second)

	instance.OnActivation()
	instance.OnActivation()
	manual.Advance(time.Second)

	state := instance.Clock().Snapshot()
	assert.True(t, state.Running(), "restart must not be followed by a toggle")
	assert.Equal(t, 1499, state.RemainingSeconds())
}

func TestRestartConfirmation(t *testing.T) {
	failure := errors.New("dialog closed")
	tests := []struct {
		name      string
		confirmer *scriptedConfirmer
		wantErr   error
		restarted bool
	}{
		{"confirmed", &scriptedConfirmer{answer: true}, nil, true},
		{"declined", &scriptedConfirmer{answer: false}, nil, false},
		{"confirmer error", &scriptedConfirmer{err: failure}, failure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instance, manual := newTestApp(t, testConfig(true), tt.confirmer)
			instance.Start()
			manual.Advance(time.Minute - time.Second)

			err := instance.Restart(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, []string{RestartPrompt}, tt.confirmer.prompts)

			remaining := instance.Clock().Snapshot().RemainingSeconds()
			if tt.restarted {
				assert.Equal(t, 1500, remaining)
			} else {
				assert.Equal(t, 1441, remaining)
			}
		})
	}
}

func TestRestartWithoutConfirmer(t *testing.T) {
	instance, manual := newTestApp(t, testConfig(true), nil)
	instance.Start()
	manual.Advance(10 * time.Second)

	err := instance.Restart(context.Background())
	require.ErrorIs(t, err, ErrConfirmationUnavailable)
	assert.Equal(t, 1490, instance.Clock().Snapshot().RemainingSeconds())
}

func TestRestartSkipsPromptWhenNotRequired(t *testing.T) {
	confirmer := &scriptedConfirmer{}
	instance, manual := newTestApp(t, testConfig(false), confirmer)
	instance.Start()
	manual.Advance(10 * time.Second)

	require.NoError(t, instance.Restart(context.Background()))
	assert.Empty(t, confirmer.prompts)
	assert.Equal(t, 1500, instance.Clock().Snapshot().RemainingSeconds())
}

func TestExecuteCommands(t *testing.T) {
	instance, _ := newTestApp(t, testConfig(false), nil)
	ctx := context.Background()

	require.NoError(t, instance.Execute(ctx, CommandStart))
	assert.True(t, instance.Clock().Snapshot().Running())

	require.NoError(t, instance.Execute(ctx, CommandTogglePause))
	assert.Equal(t, session.StatusPaused, instance.Clock().Snapshot().Status)

	require.NoError(t, instance.Execute(ctx, CommandStop))
	assert.Equal(t, session.StatusStopped, instance.Clock().Snapshot().Status)

	require.NoError(t, instance.Execute(ctx, CommandRestart))
	assert.True(t, instance.Clock().Snapshot().Running())

	err := instance.Execute(ctx, Command("skip"))
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestIdleRoundTripThroughApp(t *testing.T) {
	instance, manual := newTestApp(t, testConfig(false), nil)
	instance.Start()

	manual.Advance(time.Minute)
	require.True(t, instance.Clock().Snapshot().PausedByIdle)

	instance.OnActivity()
	state := instance.Clock().Snapshot()
	assert.True(t, state.Running())
	assert.False(t, state.PausedByIdle)
}

func TestCloseIsIdempotent(t *testing.T) {
	instance, manual := newTestApp(t, testConfig(false), nil)
	instance.Start()
	instance.OnActivation()

	instance.Close()
	instance.Close()
	assert.Equal(t, 0, manual.Pending())
}
