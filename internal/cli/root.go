// Package cli is the pomodoro command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "pomodoro"

type options struct {
	configPath string
	envFile    string
	logLevel   string
	logFile    string
	soundsDir  string
}

// sessionOptions are the flags of a command that runs a session.
type sessionOptions struct {
	noAutostart bool
	systemIdle  bool
}

// NewRootCommand creates the root command. Without a subcommand it runs the
// terminal front-end.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	session := &sessionOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Pomodoro work/break timer",
		Long: `pomodoro alternates work sessions with short breaks and a long break every
fourth session. Press space to pause or resume, double-press it to restart the
current session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(cmd, opts, session)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default: <user config dir>/pomodoro/settings.yaml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "optional .env file with POMODORO_* overrides")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default: stderr, or <user config dir>/pomodoro/pomodoro.log in the terminal UI)")
	flags.StringVar(&opts.soundsDir, "sounds", "", "directory with break-start-bip and break-end-bip sounds")

	addSessionFlags(rootCmd, session, false)

	rootCmd.AddCommand(newTrayCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newSendCommand())

	return rootCmd
}

func addSessionFlags(cmd *cobra.Command, session *sessionOptions, systemIdle bool) {
	cmd.Flags().BoolVar(&session.noAutostart, "no-autostart", false, "wait for a start command instead of starting the first session")
	cmd.Flags().BoolVar(&session.systemIdle, "system-idle", systemIdle, "treat OS input activity as user activity")
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
