// Package config loads user settings and converts them into the clock's
// configuration snapshot.
package config

import (
	"time"

	"pomodoro/internal/core/model"
)

// IdlePauseSettings is the idlePause block of the settings file.
type IdlePauseSettings struct {
	Enabled        bool    `yaml:"enabled"`
	TimeoutMinutes float64 `yaml:"timeoutMinutes"`
}

// Settings defines editable user preferences. Durations are in minutes.
type Settings struct {
	WorkDuration      float64           `yaml:"workDuration"`
	ShortRestDuration float64           `yaml:"shortRestDuration"`
	LongRestDuration  float64           `yaml:"longRestDuration"`
	ShowClock         bool              `yaml:"showClock"`
	ConfirmOnRestart  bool              `yaml:"confirmOnRestart"`
	IdlePause         IdlePauseSettings `yaml:"idlePause"`
	SoundsDir         string            `yaml:"soundsDir,omitempty"`
}

// DefaultSettings returns the default preferences.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:      25,
		ShortRestDuration: 5,
		LongRestDuration:  20,
		ShowClock:         true,
		ConfirmOnRestart:  false,
		IdlePause: IdlePauseSettings{
			Enabled:        false,
			TimeoutMinutes: 5,
		},
	}
}

// SessionConfig converts settings to a clock configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		WorkDuration:      minutes(settings.WorkDuration),
		ShortRestDuration: minutes(settings.ShortRestDuration),
		LongRestDuration:  minutes(settings.LongRestDuration),
		ShowClock:         settings.ShowClock,
		ConfirmOnRestart:  settings.ConfirmOnRestart,
		IdlePause: model.IdlePauseConfig{
			Enabled: settings.IdlePause.Enabled,
			Timeout: minutes(settings.IdlePause.TimeoutMinutes),
		},
	}
}

// sanitize replaces non-positive durations with defaults.
func (settings *Settings) sanitize() {
	defaults := DefaultSettings()
	if settings.WorkDuration <= 0 {
		settings.WorkDuration = defaults.WorkDuration
	}
	if settings.ShortRestDuration <= 0 {
		settings.ShortRestDuration = defaults.ShortRestDuration
	}
	if settings.LongRestDuration <= 0 {
		settings.LongRestDuration = defaults.LongRestDuration
	}
	if settings.IdlePause.TimeoutMinutes <= 0 {
		settings.IdlePause.TimeoutMinutes = defaults.IdlePause.TimeoutMinutes
	}
}

func minutes(value float64) time.Duration {
	return (time.Duration(value * float64(time.Minute))).Round(time.Second)
}
