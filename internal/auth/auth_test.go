package auth

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestExchangeKeyLifecycle(t *testing.T) {
	keyring.MockInit()

	if HasExchangeKey() {
		t.Fatalf("unexpected key before save")
	}
	if err := SaveExchangeKey("  abc123  "); err != nil {
		t.Fatalf("SaveExchangeKey: %v", err)
	}
	if got := ExchangeKey(); got != "abc123" {
		t.Fatalf("ExchangeKey() = %q", got)
	}
	if err := DeleteExchangeKey(); err != nil {
		t.Fatalf("DeleteExchangeKey: %v", err)
	}
	if HasExchangeKey() {
		t.Fatalf("key still present after delete")
	}
	if err := DeleteExchangeKey(); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSaveExchangeKeyRejectsBlank(t *testing.T) {
	keyring.MockInit()
	if err := SaveExchangeKey("   "); err == nil {
		t.Fatalf("expected error for blank key")
	}
}
