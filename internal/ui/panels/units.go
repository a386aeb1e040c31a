package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/units"
)

// UnitConverter converts temperature, length and weight values.
type UnitConverter struct {
	win      fyne.Window
	category *widget.Select
	from     *widget.Select
	to       *widget.Select
	value    *widget.Entry
	result   *widget.Label
}

func NewUnitConverter() *UnitConverter {
	return &UnitConverter{}
}

func (panel *UnitConverter) Title() string       { return "Unit Converter" }
func (panel *UnitConverter) Icon() fyne.Resource { return theme.ViewRestoreIcon() }

func (panel *UnitConverter) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	var names []string
	for _, c := range units.Categories() {
		names = append(names, string(c))
	}
	panel.from = widget.NewSelect(nil, nil)
	panel.to = widget.NewSelect(nil, nil)
	panel.category = widget.NewSelect(names, func(name string) { panel.selectCategory(units.Category(name)) })
	panel.value = widget.NewEntry()
	panel.value.SetPlaceHolder("Value")
	panel.result = widget.NewLabelWithStyle("Result: ", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	panel.category.SetSelected(names[0])

	form := widget.NewForm(
		widget.NewFormItem("Conversion Type", panel.category),
		widget.NewFormItem("From", panel.from),
		widget.NewFormItem("To", panel.to),
		widget.NewFormItem("Value", panel.value),
	)
	return container.NewVBox(
		heading("Unit Converter"),
		form,
		container.NewCenter(widget.NewButton("Convert", panel.convert)),
		panel.result,
	)
}

func (panel *UnitConverter) selectCategory(c units.Category) {
	options := units.Units(c)
	from, to := units.DefaultPair(c)
	panel.from.Options = options
	panel.to.Options = options
	panel.from.SetSelected(from)
	panel.to.SetSelected(to)
}

func (panel *UnitConverter) convert() {
	value, err := units.ParseValue(panel.value.Text)
	if err != nil {
		showError(panel.win, "units", err)
		return
	}
	result, err := units.Convert(units.Request{
		Category: units.Category(panel.category.Selected),
		From:     panel.from.Selected,
		To:       panel.to.Selected,
		Value:    value,
	})
	if err != nil {
		showError(panel.win, "units", err)
		return
	}
	panel.result.SetText(units.FormatResult(result))
}
