// Package app owns the single session clock and interaction gate of a
// process and exposes them as host commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/interaction"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/core/session"
)

// RestartPrompt is the question asked before a confirmed restart.
const RestartPrompt = "Are you sure you want to restart the current session?"

// ErrConfirmationUnavailable means a restart needs confirmation but no
// Confirmer was provided.
var ErrConfirmationUnavailable = errors.New("restart confirmation unavailable")

// Confirmer asks the user a yes/no question. It may block until answered.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Collaborators are the host-side implementations the core talks to.
type Collaborators struct {
	Display   session.Display
	Notifier  session.Notifier
	Sound     session.SoundPlayer
	Confirmer Confirmer
}

// Options tunes timing. Zero values select the defaults.
type Options struct {
	TickInterval     time.Duration
	ActivationWindow time.Duration
}

// App wires one Clock to one Gate.
type App struct {
	clock     *session.Clock
	gate      *interaction.Gate
	confirmer Confirmer

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// New builds the clock and gate for config.
func New(config model.SessionConfig, scheduler schedule.Scheduler, collaborators Collaborators, options Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	instance := &App{
		confirmer: collaborators.Confirmer,
		ctx:       ctx,
		cancel:    cancel,
	}

	instance.clock = session.New(config, scheduler, session.Options{
		TickInterval: options.TickInterval,
		Display:      collaborators.Display,
		Notifier:     collaborators.Notifier,
		Sound:        collaborators.Sound,
	})
	instance.gate = interaction.New(instance.clock, scheduler, interaction.Options{
		Window:   options.ActivationWindow,
		OnSingle: instance.TogglePause,
		OnDouble: func() {
			if err := instance.Restart(instance.ctx); err != nil {
				slog.Warn("restart failed", "error", err)
			}
		},
		Notifier: collaborators.Notifier,
	})
	instance.clock.SetIdleTracker(instance.gate)
	return instance
}

// Clock exposes the session clock.
func (instance *App) Clock() *session.Clock {
	return instance.clock
}

// Start starts or continues the countdown.
func (instance *App) Start() {
	instance.clock.Start()
}

// Stop halts the countdown, keeping its remaining time.
func (instance *App) Stop() {
	instance.clock.Stop()
}

// TogglePause pauses a running clock and resumes a paused one.
func (instance *App) TogglePause() {
	instance.clock.TogglePause()
}

// Restart runs the current phase again from its full duration, asking the
// Confirmer first when the configuration requires it. A declined prompt is
// not an error.
func (instance *App) Restart(ctx context.Context) error {
	if !instance.clock.Config().ConfirmOnRestart {
		instance.clock.Restart(false)
		return nil
	}
	if instance.confirmer == nil {
		return ErrConfirmationUnavailable
	}

	confirmed, err := instance.confirmer.Confirm(ctx, RestartPrompt)
	if err != nil {
		return fmt.Errorf("confirm restart: %w", err)
	}
	if !confirmed {
		slog.Debug("restart declined")
		return nil
	}
	instance.clock.Restart(true)
	return nil
}

// OnActivation forwards a raw click to the gate.
func (instance *App) OnActivation() {
	instance.gate.OnActivation()
}

// OnActivity forwards a raw activity signal to the gate.
func (instance *App) OnActivity() {
	instance.gate.OnActivity()
}

// ApplyConfig replaces the clock configuration.
func (instance *App) ApplyConfig(config model.SessionConfig) {
	instance.clock.ApplyConfig(config)
}

// Close releases all timers. It is safe to call more than once.
func (instance *App) Close() {
	instance.once.Do(func() {
		instance.cancel()
		instance.gate.Dispose()
		instance.clock.Dispose()
	})
}
