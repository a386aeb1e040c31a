package panels

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/model"
	"toolbox/internal/core/passgen"
	"toolbox/internal/logger"
)

// PassGen generates passwords from the selected character classes.
type PassGen struct {
	defaults model.PasswordConfig
	current  string

	win     fyne.Window
	length  *widget.Entry
	upper   *widget.Check
	lower   *widget.Check
	digits  *widget.Check
	symbols *widget.Check
	output  *widget.Entry
}

func NewPassGen(defaults model.PasswordConfig) *PassGen {
	if defaults.Length == 0 {
		defaults.Length = passgen.DefaultLength
	}
	return &PassGen{defaults: defaults}
}

func (panel *PassGen) Title() string       { return "PassGen" }
func (panel *PassGen) Icon() fyne.Resource { return theme.AccountIcon() }

func (panel *PassGen) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	panel.length = widget.NewEntry()
	panel.length.SetText(strconv.Itoa(panel.defaults.Length))
	panel.upper = widget.NewCheck("Uppercase", nil)
	panel.lower = widget.NewCheck("Lowercase", nil)
	panel.digits = widget.NewCheck("Digits", nil)
	panel.symbols = widget.NewCheck("Symbols", nil)
	panel.upper.SetChecked(true)
	panel.lower.SetChecked(true)
	panel.digits.SetChecked(true)
	panel.symbols.SetChecked(panel.defaults.Symbols)

	panel.output = widget.NewEntry()
	panel.output.TextStyle = fyne.TextStyle{Monospace: true}
	panel.output.OnChanged = func(text string) { panel.current = text }

	options := container.NewVBox(
		container.NewHBox(widget.NewLabel("Length (6-64):"), narrowEntry(panel.length, 72)),
		container.NewGridWithColumns(2, panel.upper, panel.lower, panel.digits, panel.symbols),
	)
	return container.NewVBox(
		heading("Generate a secure password"),
		container.NewCenter(options),
		container.NewCenter(widget.NewButtonWithIcon("Generate", theme.ViewRefreshIcon(), panel.generate)),
		container.NewPadded(panel.output),
		container.NewCenter(widget.NewButtonWithIcon("Copy to Clipboard", theme.ContentCopyIcon(), panel.copy)),
	)
}

// SetConfig changes the default length and symbol choice.
func (panel *PassGen) SetConfig(cfg model.PasswordConfig) {
	panel.defaults = cfg
	if panel.length == nil {
		return
	}
	panel.length.SetText(strconv.Itoa(cfg.Length))
	panel.symbols.SetChecked(cfg.Symbols)
}

func (panel *PassGen) options() passgen.Options {
	length, err := strconv.Atoi(panel.length.Text)
	if err != nil {
		length = 0
	}
	return passgen.Options{
		Length:  length,
		Upper:   panel.upper.Checked,
		Lower:   panel.lower.Checked,
		Digits:  panel.digits.Checked,
		Symbols: panel.symbols.Checked,
	}
}

func (panel *PassGen) generate() {
	opts := panel.options()
	password, err := passgen.Generate(opts)
	if err != nil {
		showError(panel.win, "passgen", err)
		return
	}
	logger.Debug("password generated", "length", opts.Length, "pool_size", len(opts.Pool()))
	panel.output.SetText(password)
}

func (panel *PassGen) copy() {
	if panel.current == "" {
		dialog.ShowInformation("Warning", passgen.ErrNothingToCopy.Error(), panel.win)
		return
	}
	fyne.CurrentApp().Clipboard().SetContent(panel.current)
	dialog.ShowInformation("Copied", "Password copied to clipboard!", panel.win)
}
