package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gen2brain/beeep"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	Beep(frequency float64, duration time.Duration) error
	Notify(title, message string) error
}

type platformService struct {
	appName string
}

// NewService returns the desktop implementation. appName is shown as the
// sender of desktop notifications where the OS supports it.
func NewService(appName string) Service {
	beeep.AppName = appName
	return &platformService{appName: appName}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// Beep plays a tone and blocks for its full duration, so consecutive calls
// never overlap even where the OS returns before the tone ends.
func (service *platformService) Beep(frequency float64, duration time.Duration) error {
	started := time.Now()
	err := beeep.Beep(frequency, int(duration/time.Millisecond))
	if rest := duration - time.Since(started); rest > 0 {
		time.Sleep(rest)
	}
	if err != nil {
		return fmt.Errorf("beep: %w", err)
	}
	return nil
}

func (service *platformService) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support")
	case "windows":
		return filepath.Join(homeDir, "AppData", "Roaming")
	default:
		return filepath.Join(homeDir, ".config")
	}
}
