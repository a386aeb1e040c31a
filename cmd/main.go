package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"toolbox/internal/auth"
	"toolbox/internal/core/exchange"
	"toolbox/internal/core/notepad"
	"toolbox/internal/core/stopwatch"
	"toolbox/internal/core/timekeeper"
	"toolbox/internal/logger"
	"toolbox/internal/platform"
	"toolbox/internal/storage"
	"toolbox/internal/ui/dispatch"
	"toolbox/internal/ui/notice"
	"toolbox/internal/ui/panels"
	"toolbox/internal/ui/preferences"
	"toolbox/internal/ui/shell"
	"toolbox/internal/ui/tray"
	"toolbox/resources"
)

const (
	appName    = "Toolbox"
	appID      = "com.toolbox.app"
	appVersion = "1.0.0"
)

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if activateErr := platform.ActivateRunning(appName); activateErr != nil {
			logger.Error("another instance holds the lock but did not answer", "error", activateErr)
		}
		return
	}
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	service := platform.NewService(appName)
	settings := preferences.DefaultSettings()
	configPath := ""
	if configDir, err := service.GetConfigDir(); err != nil {
		logger.Warn("no config directory, using defaults", "error", err)
	} else {
		settings, configPath, err = storage.LoadSettings(configDir, appName)
		if err != nil {
			logger.Warn("settings not loaded, using defaults", "path", configPath, "error", err)
		}
	}
	logFile := openLogFile(configPath)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Init(logger.ParseLevel(settings.LogLevel), logFileWriter(logFile))
	logger.Info("starting", "version", appVersion, "config", configPath)

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustLogo(resources.AppLogo))

	exchangeConfig := settings.ExchangeConfig()
	client := exchange.NewClient(exchangeConfig.Endpoint, exchangeConfig.Timeout, auth.ExchangeKey)

	timer := panels.NewTimer(timekeeper.New(timekeeper.Config{TickInterval: time.Second}))
	notes := panels.NewNotepad(notepad.NewDocument(settings.NotepadConfig().FontSize))
	passwords := panels.NewPassGen(settings.PasswordConfig())
	currency := panels.NewCurrency(client, exchangeConfig)
	alarms := panels.NewAlarm(settings.AlarmConfig(), service, service)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if configPath != "" {
			if err := storage.SaveSettingsFile(configPath, settings); err != nil {
				logger.Error("settings not saved", "path", configPath, "error", err)
			}
		}
		logger.Init(logger.ParseLevel(settings.LogLevel), logFileWriter(logFile))
		currency.SetConfig(settings.ExchangeConfig())
		passwords.SetConfig(settings.PasswordConfig())
		notes.SetConfig(settings.NotepadConfig())
		alarms.SetConfig(settings.AlarmConfig())
		logger.Info("settings applied", "log_level", settings.LogLevel)
	})

	toolbox := shell.New(fyneApp, shell.Config{
		Title:      appName + " v" + appVersion,
		Size:       fyne.NewSize(900, 700),
		OnSettings: prefsWindow.Show,
	}, []shell.Panel{
		timer,
		panels.NewStopwatch(stopwatch.New(nil)),
		panels.NewCalculator(),
		notes,
		passwords,
		panels.NewUnitConverter(),
		currency,
		panels.NewQRCode(),
		alarms,
	})

	alerts := notice.New(fyneApp, notice.Config{AutoDismiss: notice.DefaultAutoDismiss})
	alert := func(title, message string) {
		if toolbox.Background() {
			alerts.Show(title, message)
		}
	}
	timer.OnAlert = alert
	alarms.OnAlert = alert

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		wireTray(desktopApp, toolbox, prefsWindow, timer, alarms, fyneApp.Quit)
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	dispatch.SafeGo("instance.serve", func() {
		guard.Serve(func() {
			dispatch.SafeDo("instance.activate", toolbox.Show)
		})
	})

	toolbox.Window().Show()
	fyneApp.Run()
	toolbox.Shutdown()
	logger.Info("stopped")
}

func wireTray(desktopApp desktop.App, toolbox *shell.Shell, prefs *preferences.Window, timer *panels.Timer, alarms *panels.Alarm, quit func()) {
	idleIcon := resources.MustLogo(resources.AppLogo)
	activeIcon := resources.MustLogo(resources.ActiveLogo)

	trayManager := tray.New(desktopApp, toolbox.Titles(), tray.Callbacks{
		OnShow: toolbox.Show,
		OnOpenTool: func(index int) {
			toolbox.SelectIndex(index)
			toolbox.Show()
		},
		OnSettings: prefs.Show,
		OnQuit:     quit,
	})
	desktopApp.SetSystemTrayIcon(idleIcon)

	var timerActive, alarmPending bool
	updateIcon := func() {
		if timerActive || alarmPending {
			desktopApp.SetSystemTrayIcon(activeIcon)
			return
		}
		desktopApp.SetSystemTrayIcon(idleIcon)
	}
	timer.OnStatus = func(remaining string) {
		trayManager.SetTimerStatus(remaining)
		if active := remaining != ""; active != timerActive {
			timerActive = active
			updateIcon()
		}
	}
	alarms.OnStatus = func(next string) {
		trayManager.SetAlarmStatus(next)
		if pending := next != ""; pending != alarmPending {
			alarmPending = pending
			updateIcon()
		}
	}
}

// openLogFile appends JSON records next to the settings file.
func openLogFile(configPath string) *os.File {
	if configPath == "" {
		return nil
	}
	path := filepath.Join(filepath.Dir(configPath), "toolbox.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("log file unavailable", "path", path, "error", err)
		return nil
	}
	return file
}

// logFileWriter avoids handing logger.Init a typed nil.
func logFileWriter(file *os.File) io.Writer {
	if file == nil {
		return nil
	}
	return file
}
