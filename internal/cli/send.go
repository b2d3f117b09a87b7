package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pomodoro/internal/app"
	"pomodoro/internal/platform"
)

// sendTimeout bounds a remote command. A restart may wait on the user's
// confirmation.
const sendTimeout = 2 * time.Minute

func newSendCommand() *cobra.Command {
	names := make([]string, 0, len(app.Commands()))
	for _, command := range app.Commands() {
		names = append(names, string(command))
	}

	return &cobra.Command{
		Use:       "send <command>",
		Short:     "Send a command to the running timer",
		Long:      "Send one of " + strings.Join(names, ", ") + " to the running timer.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validCommand(args[0]); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), sendTimeout)
			defer cancel()
			return platform.SendCommand(ctx, appName, args[0])
		},
	}
}

func validCommand(name string) error {
	for _, command := range app.Commands() {
		if string(command) == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", app.ErrUnknownCommand, name)
}
