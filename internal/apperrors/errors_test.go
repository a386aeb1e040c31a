package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPublicMessageUsesSafeMessage(t *testing.T) {
	cause := errors.New("dial tcp: lookup api.exchangerate.host: no such host")
	err := Network("Conversion failed.", cause)
	if got := PublicMessage(err); got != "Conversion failed." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not retained")
	}
}

func TestDefaultMessages(t *testing.T) {
	err := New(KindIO, "  ", nil)
	if got := PublicMessage(err); got != "File operation failed." {
		t.Fatalf("PublicMessage() = %q", got)
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("save note: %w", IO("", errors.New("disk full")))
	kind, ok := KindOf(err)
	if !ok || kind != KindIO {
		t.Fatalf("KindOf() = (%q, %v)", kind, ok)
	}
	if !Is(err, KindIO) || Is(err, KindNetwork) {
		t.Fatalf("Is() mismatch")
	}
}

func TestPublicMessageNonAppError(t *testing.T) {
	if got := PublicMessage(errors.New("plain")); got != "plain" {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Fatalf("KindOf() on plain error reported ok")
	}
}
