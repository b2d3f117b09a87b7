package tray

import (
	"time"

	"fyne.io/fyne/v2"
)

// Notifier shows announcements as desktop notifications. The duration is
// left to the notification daemon.
type Notifier struct {
	app fyne.App
}

// NewNotifier creates a notifier for app.
func NewNotifier(app fyne.App) *Notifier {
	return &Notifier{app: app}
}

// Notify sends message as a desktop notification.
func (notifier *Notifier) Notify(message string, _ time.Duration) {
	notification := fyne.NewNotification(menuTitle, message)
	fyne.Do(func() {
		notifier.app.SendNotification(notification)
	})
}
