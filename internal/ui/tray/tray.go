// Package tray is the system-tray front-end. The tray title and the first
// menu entry carry the status text. Clicking that entry is an activation;
// the other entries issue commands directly.
package tray

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/systray"

	"pomodoro/internal/core/session"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers. They run on the fyne main
// goroutine, so anything that may block must hand off to another goroutine.
type Callbacks struct {
	OnActivation  func()
	OnTogglePause func()
	OnRestart     func()
	OnStart       func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	items      []*fyne.MenuItem
	menu       *fyne.Menu
	shown      session.Emphasis
	setTitle   func(string)

	mu       sync.Mutex
	text     string
	emphasis session.Emphasis
	queued   bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		emphasis:  session.EmphasisWork,
		shown:     session.EmphasisWork,
		setTitle: func(title string) {
			systray.SetTitle(title)
			systray.SetTooltip(title)
		},
	}

	manager.statusItem = fyne.NewMenuItem("Starting...", invoke(&manager.callbacks.OnActivation))

	manager.pauseItem = fyne.NewMenuItem("Pause / Resume", invoke(&manager.callbacks.OnTogglePause))
	manager.pauseItem.Icon = theme.MediaPauseIcon()

	start := fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStart))
	start.Icon = theme.MediaPlayIcon()
	stop := fyne.NewMenuItem("Stop", invoke(&manager.callbacks.OnStop))
	stop.Icon = theme.MediaStopIcon()
	restart := fyne.NewMenuItem("Restart", invoke(&manager.callbacks.OnRestart))
	restart.Icon = theme.MediaReplayIcon()
	preferences := fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	preferences.Icon = theme.SettingsIcon()
	quit := fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	quit.IsQuit = true

	manager.items = []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		start,
		stop,
		restart,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	}
	manager.refreshMenu()
	manager.app.SetSystemTrayIcon(theme.MediaPlayIcon())

	return manager
}

// Render records the status and schedules a tray update on the main
// goroutine. It never blocks, so the clock may call it with its lock held.
func (manager *Manager) Render(text string, emphasis session.Emphasis) {
	manager.mu.Lock()
	manager.text = text
	manager.emphasis = emphasis
	if manager.queued {
		manager.mu.Unlock()
		return
	}
	manager.queued = true
	manager.mu.Unlock()

	fyne.Do(manager.apply)
}

// apply runs on the main goroutine. A tick only changes labels; the menu and
// icon are rebuilt when the phase kind changes.
func (manager *Manager) apply() {
	manager.mu.Lock()
	text, emphasis := manager.text, manager.emphasis
	manager.queued = false
	manager.mu.Unlock()

	manager.statusItem.Label = text
	manager.setTitle(text)

	if emphasis == manager.shown {
		manager.menu.Refresh()
		return
	}
	manager.shown = emphasis
	manager.app.SetSystemTrayIcon(iconFor(emphasis))
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu(menuTitle, manager.items...)
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func iconFor(emphasis session.Emphasis) fyne.Resource {
	if emphasis == session.EmphasisRest {
		return theme.HistoryIcon()
	}
	return theme.MediaPlayIcon()
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
