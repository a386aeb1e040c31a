package model

import "time"

// ExchangeConfig configures the currency converter.
type ExchangeConfig struct {
	Endpoint   string
	Timeout    time.Duration
	Currencies []string
	From       string
	To         string
}

// PasswordConfig holds the password generator defaults.
type PasswordConfig struct {
	Length  int
	Symbols bool
}

// NotepadConfig holds the notepad defaults.
type NotepadConfig struct {
	FontSize int
}

// AlarmConfig describes what happens when an alarm fires.
type AlarmConfig struct {
	BeepCount     int
	BeepFrequency float64
	BeepDuration  time.Duration
	Notify        bool
}
