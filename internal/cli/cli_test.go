package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/app"
	"pomodoro/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	out, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	settings, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)

	_, err = execute(t, "config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force", "--config", path)
	assert.NoError(t, err)
}

func TestConfigShowAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workDuration: 50\n"), 0o644))
	t.Setenv(config.EnvShortRestDuration, "10")

	out, err := execute(t, "config", "show", "--config", path, "--env-file", filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Contains(t, out, "workDuration: 50")
	assert.Contains(t, out, "shortRestDuration: 10")
	assert.Contains(t, out, "longRestDuration: 20")
}

func TestSendRejectsUnknownCommand(t *testing.T) {
	_, err := execute(t, "send", "explode")
	assert.ErrorIs(t, err, app.ErrUnknownCommand)
}

func TestValidCommandAcceptsSurface(t *testing.T) {
	for _, command := range app.Commands() {
		assert.NoError(t, validCommand(string(command)))
	}
}

func TestSendHelpListsCommands(t *testing.T) {
	cmd := newSendCommand()
	for _, name := range []string{"togglePause", "restart", "start", "stop"} {
		assert.True(t, strings.Contains(cmd.Long, name), name)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitializeLoggerWritesFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := filepath.Join(t.TempDir(), "logs", "pomodoro.log")
	closeLog, err := initializeLogger(&options{logLevel: "warn", logFile: path}, os.Stderr)
	require.NoError(t, err)

	slog.Info("hidden")
	slog.Warn("visible", "key", "value")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "msg=visible key=value")
}

func TestTrayDefaultsToSystemIdle(t *testing.T) {
	root := NewRootCommand()
	trayCmd, _, err := root.Find([]string{"tray"})
	require.NoError(t, err)

	assert.Equal(t, "true", trayCmd.Flags().Lookup("system-idle").DefValue)
	assert.Equal(t, "false", root.Flags().Lookup("system-idle").DefValue)
}
