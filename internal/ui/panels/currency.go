package panels

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/auth"
	"toolbox/internal/core/exchange"
	"toolbox/internal/core/model"
	"toolbox/internal/ui/dispatch"
)

// Currency converts amounts through the exchange-rate client. Requests run
// off the UI goroutine; the Convert button stays disabled while one is in flight.
type Currency struct {
	client *exchange.Client
	config model.ExchangeConfig

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex

	win     fyne.Window
	amount  *widget.Entry
	from    *widget.Select
	to      *widget.Select
	convert *widget.Button
	result  *widget.Label
	key     *widget.Entry
	keyInfo *widget.Label
}

func NewCurrency(client *exchange.Client, config model.ExchangeConfig) *Currency {
	ctx, cancel := context.WithCancel(context.Background())
	return &Currency{client: client, config: config, ctx: ctx, cancel: cancel}
}

func (panel *Currency) Title() string       { return "Currency Converter" }
func (panel *Currency) Icon() fyne.Resource { return theme.StorageIcon() }

func (panel *Currency) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	currencies := panel.config.Currencies
	if len(currencies) == 0 {
		currencies = exchange.DefaultCurrencies
	}
	panel.amount = widget.NewEntry()
	panel.amount.SetPlaceHolder("Amount")
	panel.from = widget.NewSelect(currencies, nil)
	panel.to = widget.NewSelect(currencies, nil)
	panel.from.SetSelected(panel.config.From)
	panel.to.SetSelected(panel.config.To)
	panel.convert = widget.NewButton("Convert", panel.startConvert)
	panel.result = widget.NewLabelWithStyle("Result: ", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	panel.key = widget.NewPasswordEntry()
	panel.key.SetPlaceHolder("Access key (optional)")
	panel.keyInfo = widget.NewLabel("")
	panel.refreshKeyInfo()

	form := widget.NewForm(
		widget.NewFormItem("Amount", panel.amount),
		widget.NewFormItem("From", panel.from),
		widget.NewFormItem("To", panel.to),
	)
	keyRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(
			widget.NewButton("Save Key", panel.saveKey),
			widget.NewButton("Clear Key", panel.clearKey),
		),
		panel.key,
	)
	return container.NewVBox(
		heading("Currency Converter"),
		form,
		container.NewCenter(panel.convert),
		panel.result,
		widget.NewSeparator(),
		keyRow,
		panel.keyInfo,
	)
}

// SetConfig applies new settings. The currency lists keep their selection
// when it is still available.
func (panel *Currency) SetConfig(config model.ExchangeConfig) {
	panel.mu.Lock()
	panel.config = config
	panel.mu.Unlock()
	panel.client.SetEndpoint(config.Endpoint)
	panel.client.SetTimeout(config.Timeout)
	if panel.from == nil {
		return
	}
	for _, sel := range []*widget.Select{panel.from, panel.to} {
		current := sel.Selected
		sel.Options = config.Currencies
		sel.Refresh()
		if !containsString(config.Currencies, current) {
			sel.ClearSelected()
		}
	}
}

func (panel *Currency) startConvert() {
	amount, err := exchange.ParseAmount(panel.amount.Text)
	if err != nil {
		showError(panel.win, "currency", err)
		return
	}
	req := exchange.Request{From: panel.from.Selected, To: panel.to.Selected, Amount: amount}
	panel.convert.Disable()
	panel.result.SetText("Converting…")

	dispatch.SafeGo("currency.convert", func() {
		result, err := panel.client.Convert(panel.ctx, req)
		if panel.ctx.Err() != nil {
			return
		}
		dispatch.SafeDo("currency.result", func() {
			panel.convert.Enable()
			if err != nil {
				panel.result.SetText("Result: ")
				showError(panel.win, "currency", err)
				return
			}
			panel.result.SetText(result.Label())
		})
	})
}

func (panel *Currency) saveKey() {
	if err := auth.SaveExchangeKey(panel.key.Text); err != nil {
		showError(panel.win, "currency", err)
		return
	}
	panel.key.SetText("")
	panel.refreshKeyInfo()
	dialog.ShowInformation("Saved", "Access key stored in the system keychain.", panel.win)
}

func (panel *Currency) clearKey() {
	if err := auth.DeleteExchangeKey(); err != nil {
		showError(panel.win, "currency", err)
		return
	}
	panel.refreshKeyInfo()
}

func (panel *Currency) refreshKeyInfo() {
	if auth.HasExchangeKey() {
		panel.keyInfo.SetText("Access key: stored")
		return
	}
	panel.keyInfo.SetText("Access key: none")
}

// Shutdown abandons any in-flight request.
func (panel *Currency) Shutdown() {
	panel.cancel()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
