package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	endpoint  *widget.Entry
	timeout   *widget.Entry
	pwLength  *widget.Entry
	pwSymbols *widget.Check
	fontSize  *widget.Slider
	fontLabel *widget.Label
	beepCount *widget.Entry
	notify    *widget.Check
	logLevel  *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Toolbox Settings")

	prefs := &Window{
		window:    window,
		settings:  settings,
		onSave:    onSave,
		endpoint:  widget.NewEntry(),
		timeout:   widget.NewEntry(),
		pwLength:  widget.NewEntry(),
		pwSymbols: widget.NewCheck("Include symbols by default", nil),
		fontSize:  widget.NewSlider(8, 48),
		fontLabel: widget.NewLabel(""),
		beepCount: widget.NewEntry(),
		notify:    widget.NewCheck("Desktop notification when an alarm fires", nil),
		logLevel:  widget.NewSelect(logLevels, nil),
	}
	prefs.fontSize.Step = 1
	prefs.fontSize.OnChanged = func(value float64) {
		prefs.fontLabel.SetText(fmt.Sprintf("%d pt", int(value)))
	}
	prefs.UpdateSettings(settings)

	heading := func(text string) *widget.Label {
		return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}

	form := container.NewVBox(
		heading("Currency Converter"),
		widget.NewForm(
			widget.NewFormItem("Endpoint", prefs.endpoint),
			widget.NewFormItem("Timeout (sec)", prefs.timeout),
		),
		heading("Password Generator"),
		widget.NewForm(widget.NewFormItem("Default length", prefs.pwLength)),
		prefs.pwSymbols,
		heading("Notepad"),
		container.NewBorder(nil, nil, widget.NewLabel("Font size"), prefs.fontLabel, prefs.fontSize),
		heading("Alarm"),
		widget.NewForm(widget.NewFormItem("Beeps", prefs.beepCount)),
		prefs.notify,
		heading("Diagnostics"),
		widget.NewForm(widget.NewFormItem("Log level", prefs.logLevel)),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(form)))
	window.Resize(fyne.NewSize(460, 520))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.endpoint.SetText(settings.ExchangeEndpoint)
	prefs.timeout.SetText(strconv.Itoa(int(settings.ExchangeTimeout / time.Second)))
	prefs.pwLength.SetText(strconv.Itoa(settings.PasswordLength))
	prefs.pwSymbols.SetChecked(settings.PasswordSymbols)
	prefs.fontSize.SetValue(float64(settings.NotepadFontSize))
	prefs.fontLabel.SetText(fmt.Sprintf("%d pt", settings.NotepadFontSize))
	prefs.beepCount.SetText(strconv.Itoa(settings.AlarmBeepCount))
	prefs.notify.SetChecked(settings.DesktopNotify)
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	prefs.settings = Apply(prefs.settings, FormValues{
		Endpoint:  prefs.endpoint.Text,
		Timeout:   prefs.timeout.Text,
		PwLength:  prefs.pwLength.Text,
		PwSymbols: prefs.pwSymbols.Checked,
		FontSize:  int(prefs.fontSize.Value),
		BeepCount: prefs.beepCount.Text,
		Notify:    prefs.notify.Checked,
		LogLevel:  prefs.logLevel.Selected,
	})
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// FormValues is the raw content of the settings form.
type FormValues struct {
	Endpoint  string
	Timeout   string
	PwLength  string
	PwSymbols bool
	FontSize  int
	BeepCount string
	Notify    bool
	LogLevel  string
}

// Apply merges form values into settings. Values that do not parse or are
// out of range keep the previous setting.
func Apply(settings Settings, form FormValues) Settings {
	if endpoint := strings.TrimSpace(form.Endpoint); strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		settings.ExchangeEndpoint = endpoint
	}
	if seconds, ok := parsePositiveInt(form.Timeout); ok && seconds <= 300 {
		settings.ExchangeTimeout = time.Duration(seconds) * time.Second
	}
	if length, ok := parsePositiveInt(form.PwLength); ok && length >= 6 && length <= 64 {
		settings.PasswordLength = length
	}
	settings.PasswordSymbols = form.PwSymbols
	if form.FontSize >= 8 && form.FontSize <= 48 {
		settings.NotepadFontSize = form.FontSize
	}
	if count, ok := parsePositiveInt(form.BeepCount); ok && count <= 60 {
		settings.AlarmBeepCount = count
	}
	settings.DesktopNotify = form.Notify
	for _, level := range logLevels {
		if form.LogLevel == level {
			settings.LogLevel = level
		}
	}
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
