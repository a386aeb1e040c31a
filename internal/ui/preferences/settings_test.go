package preferences

import (
	"testing"
	"time"
)

func TestApplyKeepsInvalidValues(t *testing.T) {
	base := DefaultSettings()
	got := Apply(base, FormValues{
		Endpoint:  "ftp://nope",
		Timeout:   "abc",
		PwLength:  "3",
		FontSize:  99,
		BeepCount: "-2",
		LogLevel:  "verbose",
	})
	if got.ExchangeEndpoint != base.ExchangeEndpoint ||
		got.ExchangeTimeout != base.ExchangeTimeout ||
		got.PasswordLength != base.PasswordLength ||
		got.NotepadFontSize != base.NotepadFontSize ||
		got.AlarmBeepCount != base.AlarmBeepCount ||
		got.LogLevel != base.LogLevel {
		t.Fatalf("invalid values leaked into settings: %+v", got)
	}
	if got.DesktopNotify {
		t.Fatalf("unchecked notify kept true")
	}
}

func TestApplyValidValues(t *testing.T) {
	got := Apply(DefaultSettings(), FormValues{
		Endpoint:  " https://rates.example.com/convert ",
		Timeout:   "10",
		PwLength:  "32",
		PwSymbols: true,
		FontSize:  18,
		BeepCount: "3",
		Notify:    true,
		LogLevel:  "debug",
	})
	if got.ExchangeEndpoint != "https://rates.example.com/convert" ||
		got.ExchangeTimeout != 10*time.Second ||
		got.PasswordLength != 32 || !got.PasswordSymbols ||
		got.NotepadFontSize != 18 ||
		got.AlarmBeepCount != 3 ||
		got.LogLevel != "debug" {
		t.Fatalf("Apply() = %+v", got)
	}
}

func TestExchangeConfigFallsBack(t *testing.T) {
	settings := DefaultSettings()
	settings.Currencies = []string{"CHF", "SEK"}
	settings.FromCurrency = "USD"
	settings.ToCurrency = "SEK"

	cfg := settings.ExchangeConfig()
	if cfg.From != "CHF" || cfg.To != "SEK" {
		t.Fatalf("from/to = %s/%s", cfg.From, cfg.To)
	}

	settings.Currencies = nil
	if cfg := settings.ExchangeConfig(); len(cfg.Currencies) != 5 {
		t.Fatalf("empty currency list not defaulted: %v", cfg.Currencies)
	}
}

func TestAlarmConfig(t *testing.T) {
	cfg := DefaultSettings().AlarmConfig()
	if cfg.BeepCount != 8 || cfg.BeepFrequency != 1000 || cfg.BeepDuration != 500*time.Millisecond {
		t.Fatalf("AlarmConfig() = %+v", cfg)
	}
}
