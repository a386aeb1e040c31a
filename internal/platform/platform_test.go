package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	a := portFromName("Toolbox")
	if a != portFromName("Toolbox") {
		t.Fatalf("port not deterministic")
	}
	if a < 20000 || a > 39999 {
		t.Fatalf("port %d out of range", a)
	}
}

func TestSingleInstanceActivation(t *testing.T) {
	name := fmt.Sprintf("toolbox-test-%d", time.Now().UnixNano())
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("loopback port unavailable: %v", err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v", err)
	}

	activated := make(chan struct{}, 1)
	go guard.Serve(func() { activated <- struct{}{} })

	if err := ActivateRunning(name); err != nil {
		t.Fatalf("ActivateRunning() error: %v", err)
	}
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatalf("running instance was not activated")
	}
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil || guard.Address() != "" {
		t.Fatalf("nil guard misbehaved")
	}
}

func TestFallbackConfigDir(t *testing.T) {
	home := filepath.Join("home", "user")
	if got := fallbackConfigDir(home); filepath.Dir(got) == "" || got == home {
		t.Fatalf("fallbackConfigDir() = %q", got)
	}
}
