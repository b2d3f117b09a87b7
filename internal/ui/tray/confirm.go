package tray

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Confirmer asks yes/no questions in a small dialog window. Confirm must not
// be called from the fyne main goroutine.
type Confirmer struct {
	app fyne.App
}

// NewConfirmer creates a confirmer for app.
func NewConfirmer(app fyne.App) *Confirmer {
	return &Confirmer{app: app}
}

// Confirm shows prompt and waits for an answer or ctx.
func (confirmer *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	var window fyne.Window

	fyne.Do(func() {
		window = confirmer.app.NewWindow(menuTitle)
		window.Resize(fyne.NewSize(360, 160))
		window.SetCloseIntercept(func() {
			answer(reply, false)
			window.Close()
		})

		confirm := dialog.NewConfirm("Restart", prompt, func(confirmed bool) {
			answer(reply, confirmed)
			window.Close()
		}, window)
		confirm.SetConfirmText("Restart")
		confirm.SetDismissText("Cancel")
		window.Show()
		confirm.Show()
		window.RequestFocus()
	})

	select {
	case confirmed := <-reply:
		return confirmed, nil
	case <-ctx.Done():
		fyne.Do(func() {
			if window != nil {
				window.Close()
			}
		})
		return false, ctx.Err()
	}
}

func answer(reply chan<- bool, value bool) {
	select {
	case reply <- value:
	default:
	}
}
