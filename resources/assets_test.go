package resources

import (
	"bytes"
	"testing"
)

func TestLogosEmbedded(t *testing.T) {
	for _, name := range []string{AppLogo, ActiveLogo} {
		res, err := Logo(name)
		if err != nil {
			t.Fatalf("Logo(%q) error: %v", name, err)
		}
		if !bytes.Contains(res.Content(), []byte("<svg")) {
			t.Fatalf("%s is not an svg", name)
		}
		again, _ := Logo(name)
		if again != res {
			t.Fatalf("%s not served from cache", name)
		}
	}
}

func TestLogoMissing(t *testing.T) {
	if _, err := Logo("nope.svg"); err == nil {
		t.Fatalf("expected error for missing logo")
	}
}
