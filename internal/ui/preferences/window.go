// Package preferences is the settings editor of the tray front-end. Saving
// writes the settings file; the running clock picks the change up through
// the settings watcher.
package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/config"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     config.Settings
	onSave       func(config.Settings)
	work         *widget.Entry
	shortRest    *widget.Entry
	longRest     *widget.Entry
	idleTimeout  *widget.Entry
	showClock    *widget.Check
	confirm      *widget.Check
	idleEnabled  *widget.Check
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings config.Settings, onSave func(config.Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		work:        widget.NewEntry(),
		shortRest:   widget.NewEntry(),
		longRest:    widget.NewEntry(),
		idleTimeout: widget.NewEntry(),
		showClock:   widget.NewCheck("Show remaining time", nil),
		confirm:     widget.NewCheck("Ask before restarting", nil),
		idleEnabled: widget.NewCheck("Pause work when idle", nil),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		row("Work", prefs.work),
		row("Short break", prefs.shortRest),
		row("Long break", prefs.longRest),
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.showClock,
		prefs.confirm,
		prefs.idleEnabled,
		row("Idle timeout", prefs.idleTimeout),
	)

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	prefs.cancelButton = widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), prefs.cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(380, 360))

	return prefs
}

func row(label string, entry *widget.Entry) fyne.CanvasObject {
	return container.NewHBox(widget.NewLabel(label), layout.NewSpacer(), entry, widget.NewLabel("min"))
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings config.Settings) {
	prefs.settings = settings
	prefs.work.SetText(formatMinutes(settings.WorkDuration))
	prefs.shortRest.SetText(formatMinutes(settings.ShortRestDuration))
	prefs.longRest.SetText(formatMinutes(settings.LongRestDuration))
	prefs.idleTimeout.SetText(formatMinutes(settings.IdlePause.TimeoutMinutes))
	prefs.showClock.SetChecked(settings.ShowClock)
	prefs.confirm.SetChecked(settings.ConfirmOnRestart)
	prefs.idleEnabled.SetChecked(settings.IdlePause.Enabled)
}

// Settings returns the last saved values.
func (prefs *Window) Settings() config.Settings {
	return prefs.settings
}

// handleSave keeps the previous value of any field that is not a positive
// number.
func (prefs *Window) handleSave() {
	settings := prefs.settings

	if value, ok := parsePositive(prefs.work.Text); ok {
		settings.WorkDuration = value
	}
	if value, ok := parsePositive(prefs.shortRest.Text); ok {
		settings.ShortRestDuration = value
	}
	if value, ok := parsePositive(prefs.longRest.Text); ok {
		settings.LongRestDuration = value
	}
	if value, ok := parsePositive(prefs.idleTimeout.Text); ok {
		settings.IdlePause.TimeoutMinutes = value
	}
	settings.ShowClock = prefs.showClock.Checked
	settings.ConfirmOnRestart = prefs.confirm.Checked
	settings.IdlePause.Enabled = prefs.idleEnabled.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatMinutes(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func parsePositive(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
