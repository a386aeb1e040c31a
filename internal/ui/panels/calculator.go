package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/calc"
)

var calculatorKeys = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"(", ")", calc.KeyBackspace, calc.KeyClear},
}

// Calculator is the arithmetic panel. It also accepts keyboard input while
// its tab is selected.
type Calculator struct {
	calc    calc.Calculator
	display *canvas.Text
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (panel *Calculator) Title() string       { return "Calculator" }
func (panel *Calculator) Icon() fyne.Resource { return theme.GridIcon() }

func (panel *Calculator) Content(fyne.Window) fyne.CanvasObject {
	panel.display = canvas.NewText("", foreground())
	panel.display.TextSize = 32
	panel.display.Alignment = fyne.TextAlignTrailing
	panel.display.TextStyle = fyne.TextStyle{Monospace: true}

	grid := container.NewGridWithColumns(4)
	for _, row := range calculatorKeys {
		for _, key := range row {
			key := key
			button := widget.NewButton(key, func() { panel.press(key) })
			if key == calc.KeyEquals {
				button.Importance = widget.HighImportance
			}
			grid.Add(button)
		}
	}

	screen := container.NewStack(canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)), container.NewPadded(panel.display))
	return container.NewBorder(screen, nil, nil, nil, grid)
}

func (panel *Calculator) press(key string) {
	panel.display.Text = panel.calc.Press(key)
	panel.display.Refresh()
}

// TypedRune handles digits, operators and parentheses typed on the keyboard.
func (panel *Calculator) TypedRune(r rune) bool {
	key := string(r)
	switch {
	case calc.IsInputKey(key), key == calc.KeyEquals:
		panel.press(key)
	case r == 'c' || r == 'C':
		panel.press(calc.KeyClear)
	default:
		return false
	}
	return true
}

// TypedKey maps Enter, Backspace and Escape to =, delete and C.
func (panel *Calculator) TypedKey(event *fyne.KeyEvent) bool {
	switch event.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		panel.press(calc.KeyEquals)
	case fyne.KeyBackspace:
		panel.press(calc.KeyBackspace)
	case fyne.KeyEscape:
		panel.press(calc.KeyClear)
	default:
		return false
	}
	return true
}
