package app

import (
	"context"
	"errors"
	"fmt"
)

// Command names a host-bound trigger.
type Command string

const (
	CommandTogglePause Command = "togglePause"
	CommandRestart     Command = "restart"
	CommandStart       Command = "start"
	CommandStop        Command = "stop"
)

// ErrUnknownCommand is returned by Execute for names outside Commands.
var ErrUnknownCommand = errors.New("unknown command")

// Commands lists the command surface in display order.
func Commands() []Command {
	return []Command{CommandStart, CommandStop, CommandTogglePause, CommandRestart}
}

// Execute runs a named command.
func (instance *App) Execute(ctx context.Context, command Command) error {
	switch command {
	case CommandTogglePause:
		instance.TogglePause()
	case CommandRestart:
		return instance.Restart(ctx)
	case CommandStart:
		instance.Start()
	case CommandStop:
		instance.Stop()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	return nil
}
