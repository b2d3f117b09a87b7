package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pomodoro/internal/app"
	"pomodoro/internal/core/schedule"
	"pomodoro/internal/sound"
	"pomodoro/internal/ui/term"
)

// runTerminal runs the session in the terminal. Logs go to a file since the
// terminal belongs to the UI.
func runTerminal(cmd *cobra.Command, opts *options, session *sessionOptions) error {
	if opts.logFile == "" {
		opts.logFile = defaultLogFile()
	}
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

	bridge := term.NewBridge()
	defer bridge.Close()

	instance := app.New(h.settings.SessionConfig(), schedule.System{}, app.Collaborators{
		Display:   bridge,
		Notifier:  bridge,
		Sound:     sound.NewPlayer(h.soundsDir()),
		Confirmer: bridge,
	}, app.Options{})
	defer instance.Close()

	h.serve(ctx, instance, session)

	return term.Run(ctx, bridge, term.Actions{
		Activation: instance.OnActivation,
		Activity:   instance.OnActivity,
		Start:      instance.Start,
		Stop:       instance.Stop,
	})
}
