package preferences

import (
	"slices"
	"time"

	"toolbox/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	ExchangeEndpoint string
	ExchangeTimeout  time.Duration
	Currencies       []string
	FromCurrency     string
	ToCurrency       string

	PasswordLength  int
	PasswordSymbols bool

	NotepadFontSize int

	AlarmBeepCount     int
	AlarmBeepFrequency float64
	AlarmBeepDuration  time.Duration
	DesktopNotify      bool

	LogLevel string
}

// DefaultSettings returns default settings for Toolbox.
func DefaultSettings() Settings {
	return Settings{
		ExchangeEndpoint: "https://api.exchangerate.host/convert",
		ExchangeTimeout:  30 * time.Second,
		Currencies:       []string{"USD", "EUR", "GBP", "JPY", "INR"},
		FromCurrency:     "USD",
		ToCurrency:       "EUR",

		PasswordLength:  12,
		PasswordSymbols: false,

		NotepadFontSize: 12,

		AlarmBeepCount:     8,
		AlarmBeepFrequency: 1000,
		AlarmBeepDuration:  500 * time.Millisecond,
		DesktopNotify:      true,

		LogLevel: "info",
	}
}

// ExchangeConfig converts settings to the currency converter config.
// Default currencies missing from the list fall back to its first entries.
func (settings Settings) ExchangeConfig() model.ExchangeConfig {
	currencies := slices.Clone(settings.Currencies)
	if len(currencies) == 0 {
		currencies = DefaultSettings().Currencies
	}
	from, to := settings.FromCurrency, settings.ToCurrency
	if !slices.Contains(currencies, from) {
		from = currencies[0]
	}
	if !slices.Contains(currencies, to) {
		to = currencies[min(1, len(currencies)-1)]
	}
	return model.ExchangeConfig{
		Endpoint:   settings.ExchangeEndpoint,
		Timeout:    settings.ExchangeTimeout,
		Currencies: currencies,
		From:       from,
		To:         to,
	}
}

func (settings Settings) PasswordConfig() model.PasswordConfig {
	return model.PasswordConfig{Length: settings.PasswordLength, Symbols: settings.PasswordSymbols}
}

func (settings Settings) NotepadConfig() model.NotepadConfig {
	return model.NotepadConfig{FontSize: settings.NotepadFontSize}
}

func (settings Settings) AlarmConfig() model.AlarmConfig {
	return model.AlarmConfig{
		BeepCount:     settings.AlarmBeepCount,
		BeepFrequency: settings.AlarmBeepFrequency,
		BeepDuration:  settings.AlarmBeepDuration,
		Notify:        settings.DesktopNotify,
	}
}
