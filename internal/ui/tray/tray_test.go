package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
)

type fakeDesktop struct {
	menus []*fyne.Menu
	icon  fyne.Resource
}

func (desktop *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	desktop.menus = append(desktop.menus, menu)
}

func (desktop *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	desktop.icon = icon
}

func (desktop *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "menu item missing", "label %q", label)
	return nil
}

func TestMenuRoutesCallbacks(t *testing.T) {
	test.NewTempApp(t)
	var calls []string
	record := func(name string) func() {
		return func() { calls = append(calls, name) }
	}

	desktop := &fakeDesktop{}
	New(desktop, Callbacks{
		OnActivation:  record("activation"),
		OnTogglePause: record("toggle"),
		OnRestart:     record("restart"),
		OnStart:       record("start"),
		OnStop:        record("stop"),
		OnPreferences: record("preferences"),
		OnQuit:        record("quit"),
	})

	require.NotEmpty(t, desktop.menus)
	menu := desktop.menus[len(desktop.menus)-1]
	assert.Equal(t, menuTitle, menu.Label)
	menu.Items[0].Action()
	for _, label := range []string{"Pause / Resume", "Start", "Stop", "Restart", "Preferences", "Quit"} {
		findItem(t, menu, label).Action()
	}
	assert.Equal(t, []string{"activation", "toggle", "start", "stop", "restart", "preferences", "quit"}, calls)
	assert.Equal(t, theme.MediaPlayIcon(), desktop.icon)
}

func TestMenuToleratesMissingCallbacks(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	New(desktop, Callbacks{})

	menu := desktop.menus[len(desktop.menus)-1]
	assert.NotPanics(t, func() {
		findItem(t, menu, "Restart").Action()
	})
}

// show applies a status the way the queued main-goroutine update does.
func show(manager *Manager, text string, emphasis session.Emphasis) {
	manager.mu.Lock()
	manager.text, manager.emphasis, manager.queued = text, emphasis, true
	manager.mu.Unlock()
	manager.apply()
}

func TestApplyRebuildsMenuOnlyOnEmphasisChange(t *testing.T) {
	test.NewTempApp(t)
	desktop := &fakeDesktop{}
	manager := New(desktop, Callbacks{})
	var titles []string
	manager.setTitle = func(title string) { titles = append(titles, title) }
	menus := len(desktop.menus)

	show(manager, "🟢 Work 24:59", session.EmphasisWork)
	show(manager, "🟢 Work 24:58", session.EmphasisWork)

	assert.Len(t, desktop.menus, menus, "ticks do not rebuild the menu")
	assert.Equal(t, "🟢 Work 24:58", manager.statusItem.Label)
	assert.Equal(t, []string{"🟢 Work 24:59", "🟢 Work 24:58"}, titles)
	assert.Equal(t, theme.MediaPlayIcon(), desktop.icon)

	show(manager, "🔴 1st Break 05:00", session.EmphasisRest)

	require.Len(t, desktop.menus, menus+1)
	assert.Equal(t, theme.HistoryIcon(), desktop.icon)
	assert.Equal(t, "🔴 1st Break 05:00", desktop.menus[len(desktop.menus)-1].Items[0].Label)

	show(manager, "🔴 1st Break 04:59", session.EmphasisRest)
	assert.Len(t, desktop.menus, menus+1)
}

func TestIconFollowsEmphasis(t *testing.T) {
	test.NewTempApp(t)
	assert.Equal(t, theme.MediaPlayIcon(), iconFor(session.EmphasisWork))
	assert.Equal(t, theme.HistoryIcon(), iconFor(session.EmphasisRest))
}
