package term

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the terminal UI until the user quits or ctx is done.
func Run(ctx context.Context, bridge *Bridge, actions Actions) error {
	program := tea.NewProgram(initialModel(actions), tea.WithContext(ctx))

	pumpCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go bridge.Pump(pumpCtx, program)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
