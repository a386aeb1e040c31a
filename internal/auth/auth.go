package auth

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	serviceName     = "toolbox"
	exchangeAccount = "exchangerate-access-key"
)

// ExchangeKey returns the stored exchange-rate access key, or "" when none is saved
// or the keychain is unavailable.
func ExchangeKey() string {
	key, err := keyring.Get(serviceName, exchangeAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(key)
}

// SaveExchangeKey stores the access key in the OS keychain.
func SaveExchangeKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("access key is empty")
	}
	return keyring.Set(serviceName, exchangeAccount, key)
}

// DeleteExchangeKey removes the access key. Deleting a missing key is not an error.
func DeleteExchangeKey() error {
	err := keyring.Delete(serviceName, exchangeAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasExchangeKey reports whether a key is stored.
func HasExchangeKey() bool {
	return ExchangeKey() != ""
}
