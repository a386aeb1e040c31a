package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"toolbox/internal/files"
	"toolbox/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	Exchange struct {
		Endpoint       string   `yaml:"endpoint"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		Currencies     []string `yaml:"currencies,flow"`
		From           string   `yaml:"from"`
		To             string   `yaml:"to"`
	} `yaml:"exchange"`
	Password struct {
		Length  int   `yaml:"length"`
		Symbols *bool `yaml:"symbols"`
	} `yaml:"password"`
	Notepad struct {
		FontSize int `yaml:"font_size"`
	} `yaml:"notepad"`
	Alarm struct {
		BeepCount      int     `yaml:"beep_count"`
		BeepFrequency  float64 `yaml:"beep_frequency_hz"`
		BeepDurationMs int     `yaml:"beep_duration_ms"`
		Notify         *bool   `yaml:"desktop_notification"`
	} `yaml:"alarm"`
	LogLevel string `yaml:"log_level"`
}

// LoadSettings reads user preferences from <configDir>/<appName>. When the
// file does not exist the defaults are written to it and returned.
func LoadSettings(configDir, appName string) (preferences.Settings, string, error) {
	configPath := ResolveConfigPath(configDir, appName)
	settings, err := LoadSettingsFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return settings, configPath, SaveSettingsFile(configPath, settings)
	}
	return settings, configPath, err
}

// LoadSettingsFile reads one settings file. Defaults fill every value that
// is missing or out of range.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, err
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes user preferences to YAML.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var fileData yamlSettings
	fileData.Exchange.Endpoint = settings.ExchangeEndpoint
	fileData.Exchange.TimeoutSeconds = int(settings.ExchangeTimeout / time.Second)
	fileData.Exchange.Currencies = settings.Currencies
	fileData.Exchange.From = settings.FromCurrency
	fileData.Exchange.To = settings.ToCurrency
	fileData.Password.Length = settings.PasswordLength
	fileData.Password.Symbols = &settings.PasswordSymbols
	fileData.Notepad.FontSize = settings.NotepadFontSize
	fileData.Alarm.BeepCount = settings.AlarmBeepCount
	fileData.Alarm.BeepFrequency = settings.AlarmBeepFrequency
	fileData.Alarm.BeepDurationMs = int(settings.AlarmBeepDuration / time.Millisecond)
	fileData.Alarm.Notify = &settings.DesktopNotify
	fileData.LogLevel = settings.LogLevel

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := files.AtomicWrite(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func ResolveConfigPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	exchange := fileData.Exchange
	if endpoint := strings.TrimSpace(exchange.Endpoint); strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		settings.ExchangeEndpoint = endpoint
	}
	if exchange.TimeoutSeconds > 0 && exchange.TimeoutSeconds <= 300 {
		settings.ExchangeTimeout = time.Duration(exchange.TimeoutSeconds) * time.Second
	}
	if currencies := cleanCurrencies(exchange.Currencies); len(currencies) > 0 {
		settings.Currencies = currencies
	}
	if exchange.From != "" {
		settings.FromCurrency = strings.ToUpper(exchange.From)
	}
	if exchange.To != "" {
		settings.ToCurrency = strings.ToUpper(exchange.To)
	}

	if fileData.Password.Length >= 6 && fileData.Password.Length <= 64 {
		settings.PasswordLength = fileData.Password.Length
	}
	if fileData.Password.Symbols != nil {
		settings.PasswordSymbols = *fileData.Password.Symbols
	}

	if fileData.Notepad.FontSize >= 8 && fileData.Notepad.FontSize <= 48 {
		settings.NotepadFontSize = fileData.Notepad.FontSize
	}

	alarm := fileData.Alarm
	if alarm.BeepCount > 0 && alarm.BeepCount <= 60 {
		settings.AlarmBeepCount = alarm.BeepCount
	}
	if alarm.BeepFrequency >= 37 && alarm.BeepFrequency <= 32767 {
		settings.AlarmBeepFrequency = alarm.BeepFrequency
	}
	if alarm.BeepDurationMs > 0 && alarm.BeepDurationMs <= 5000 {
		settings.AlarmBeepDuration = time.Duration(alarm.BeepDurationMs) * time.Millisecond
	}
	if alarm.Notify != nil {
		settings.DesktopNotify = *alarm.Notify
	}

	switch level := strings.ToLower(fileData.LogLevel); level {
	case "debug", "info", "warn", "error":
		settings.LogLevel = level
	}
}

func cleanCurrencies(codes []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}
