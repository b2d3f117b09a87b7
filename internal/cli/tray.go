package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"pomodoro/internal/app"
	"pomodoro/internal/config"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/sound"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
)

var errTrayUnsupported = errors.New("system tray unsupported on this platform")

func newTrayCommand(opts *options) *cobra.Command {
	session := &sessionOptions{}
	cmd := &cobra.Command{
		Use:   "tray",
		Short: "Run the timer in the system tray",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(cmd, opts, session)
		},
	}
	addSessionFlags(cmd, session, true)
	return cmd
}

func runTray(cmd *cobra.Command, opts *options, session *sessionOptions) error {
	closeLog, err := initializeLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h, err := newHost(opts)
	if err != nil {
		return err
	}
	defer h.close()

	fyneApp := fyneapp.NewWithID("dev.pomodoro.tray")
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errTrayUnsupported
	}

	trayWindow := fyneApp.NewWindow("Pomodoro")
	trayWindow.SetContent(widget.NewLabel("Pomodoro is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	prefsWindow := newPreferencesWindow(fyneApp, h.source.Path())

	var instance *app.App
	manager := tray.New(desktopApp, tray.Callbacks{
		OnActivation: func() {
			go instance.OnActivation()
		},
		OnTogglePause: func() {
			instance.TogglePause()
		},
		OnRestart: func() {
			go restart(ctx, instance)
		},
		OnStart: func() {
			instance.Start()
		},
		OnStop: func() {
			instance.Stop()
		},
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			stop()
			fyneApp.Quit()
		},
	})

	instance = app.New(h.settings.SessionConfig(), schedule.System{}, app.Collaborators{
		Display:   manager,
		Notifier:  tray.NewNotifier(fyneApp),
		Sound:     sound.NewPlayer(h.soundsDir()),
		Confirmer: tray.NewConfirmer(fyneApp),
	}, app.Options{})
	defer instance.Close()

	h.serve(ctx, instance, session)
	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	fyneApp.Run()
	return nil
}

// newPreferencesWindow edits the settings file itself, so environment
// overrides are not written back. The settings watcher applies saved values.
func newPreferencesWindow(fyneApp fyne.App, path string) *preferences.Window {
	settings, err := config.LoadSettings(path)
	if err != nil {
		slog.Warn("preferences start from defaults", "path", path, "error", err)
	}
	return preferences.New(fyneApp, settings, func(updated config.Settings) {
		if err := config.SaveSettings(path, updated); err != nil {
			slog.Error("save settings failed", "path", path, "error", err)
		}
	})
}

func restart(ctx context.Context, instance *app.App) {
	if err := instance.Restart(ctx); err != nil {
		slog.Warn("restart failed", "error", err)
	}
}
