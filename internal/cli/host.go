package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pomodoro/internal/app"
	"pomodoro/internal/config"
	"pomodoro/internal/platform"
)

// host holds what both front-ends share: the settings source and the
// single-instance guard.
type host struct {
	opts     *options
	source   *config.FileSource
	settings config.Settings
	guard    *platform.InstanceGuard
}

func newHost(opts *options) (*host, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		slog.Warn("ignoring env file", "path", opts.envFile, "error", err)
	}

	path, err := settingsPath(opts)
	if err != nil {
		return nil, err
	}
	source := config.NewFileSource(path)
	settings, err := source.Settings()
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return nil, fmt.Errorf("%w; use `%s send <command>` to control it", err, appName)
		}
		return nil, err
	}

	slog.Info("settings loaded", "path", path, "address", guard.Address())
	return &host{opts: opts, source: source, settings: settings, guard: guard}, nil
}

func settingsPath(opts *options) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.DefaultPath(appName)
}

func (h *host) soundsDir() string {
	if h.opts.soundsDir != "" {
		return h.opts.soundsDir
	}
	return h.settings.SoundsDir
}

// serve runs the background services until ctx is done: commands from other
// invocations, settings reloads and, optionally, OS activity polling.
func (h *host) serve(ctx context.Context, instance *app.App, session *sessionOptions) {
	go func() {
		err := h.guard.Serve(ctx, func(ctx context.Context, name string) error {
			slog.Debug("remote command", "command", name)
			return instance.Execute(ctx, app.Command(name))
		})
		if err != nil {
			slog.Warn("command listener stopped", "error", err)
		}
	}()

	go func() {
		watcher := config.NewWatcher(h.source.Path(), h.source, instance.ApplyConfig)
		if err := watcher.Run(ctx); err != nil {
			slog.Warn("settings watcher stopped", "error", err)
		}
	}()

	if session.systemIdle {
		go func() {
			poller := platform.NewActivityPoller(platform.NewIdleProvider(), platform.DefaultPollInterval, instance.OnActivity)
			if err := poller.Run(ctx); err != nil {
				slog.Warn("system activity unavailable", "error", err)
			}
		}()
	}

	if !session.noAutostart {
		instance.Start()
	}
}

func (h *host) close() {
	if err := h.guard.Release(); err != nil {
		slog.Warn("release instance lock", "error", err)
	}
}
