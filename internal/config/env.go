package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the settings file.
const (
	EnvWorkDuration      = "POMODORO_WORK_DURATION"
	EnvShortRestDuration = "POMODORO_SHORT_REST_DURATION"
	EnvLongRestDuration  = "POMODORO_LONG_REST_DURATION"
	EnvShowClock         = "POMODORO_SHOW_CLOCK"
	EnvConfirmOnRestart  = "POMODORO_CONFIRM_ON_RESTART"
	EnvIdlePauseEnabled  = "POMODORO_IDLE_PAUSE_ENABLED"
	EnvIdlePauseTimeout  = "POMODORO_IDLE_PAUSE_TIMEOUT"
	EnvSoundsDir         = "POMODORO_SOUNDS_DIR"
)

// LoadEnvFile loads a .env file into the process environment without
// replacing variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no .env file", "path", path)
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	slog.Debug("loaded .env file", "path", path)
	return nil
}

// ApplyEnv overlays environment overrides on settings. Invalid values are
// logged and ignored.
func ApplyEnv(settings *Settings) {
	parseMinutesEnv(EnvWorkDuration, &settings.WorkDuration)
	parseMinutesEnv(EnvShortRestDuration, &settings.ShortRestDuration)
	parseMinutesEnv(EnvLongRestDuration, &settings.LongRestDuration)
	parseMinutesEnv(EnvIdlePauseTimeout, &settings.IdlePause.TimeoutMinutes)
	settings.ShowClock = parseBoolEnv(EnvShowClock, settings.ShowClock)
	settings.ConfirmOnRestart = parseBoolEnv(EnvConfirmOnRestart, settings.ConfirmOnRestart)
	settings.IdlePause.Enabled = parseBoolEnv(EnvIdlePauseEnabled, settings.IdlePause.Enabled)
	if dir := strings.TrimSpace(os.Getenv(EnvSoundsDir)); dir != "" {
		settings.SoundsDir = dir
	}
}

// parseBoolEnv accepts true/1/yes/on and false/0/no/off, case-insensitive.
func parseBoolEnv(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		slog.Warn("invalid boolean value, using default", "key", key, "value", val, "default", defaultValue)
		return defaultValue
	}
}

func parseMinutesEnv(key string, target *float64) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil || parsed <= 0 {
		slog.Warn("invalid duration value, ignoring", "key", key, "value", val)
		return
	}
	*target = parsed
}
