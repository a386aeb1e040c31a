package tray

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow     func()
	OnOpenTool func(index int)
	OnSettings func()
	OnQuit     func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	tools      []string
	callbacks  Callbacks
	timer      string
	alarm      string
}

// New creates a tray manager with one menu entry per tool title.
func New(app desktop.App, tools []string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		tools:     append([]string(nil), tools...),
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.statusItem.Label = manager.statusText()
	manager.refreshMenu()

	return manager
}

// SetTimerStatus shows the remaining countdown. An empty string hides it.
func (manager *Manager) SetTimerStatus(remaining string) {
	if manager.timer == remaining {
		return
	}
	manager.timer = remaining
	manager.refreshStatus()
}

// SetAlarmStatus shows the next pending alarm. An empty string hides it.
func (manager *Manager) SetAlarmStatus(next string) {
	if manager.alarm == next {
		return
	}
	manager.alarm = next
	manager.refreshStatus()
}

func (manager *Manager) statusText() string {
	var parts []string
	if manager.timer != "" {
		parts = append(parts, "Timer "+manager.timer)
	}
	if manager.alarm != "" {
		parts = append(parts, "Alarm "+manager.alarm)
	}
	if len(parts) == 0 {
		return "Status: idle"
	}
	return "Status: " + strings.Join(parts, ", ")
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = manager.statusText()
	manager.refreshMenu()
}

func (manager *Manager) menu() *fyne.Menu {
	items := []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show Toolbox", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
	}

	toolsItem := fyne.NewMenuItem("Tools", nil)
	var toolItems []*fyne.MenuItem
	for index, title := range manager.tools {
		index := index
		toolItems = append(toolItems, fyne.NewMenuItem(title, func() {
			if manager.callbacks.OnOpenTool != nil {
				manager.callbacks.OnOpenTool(index)
			}
		}))
	}
	toolsItem.ChildMenu = fyne.NewMenu("", toolItems...)

	items = append(items,
		toolsItem,
		fyne.NewMenuItem("Settings…", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
	return fyne.NewMenu("Toolbox", items...)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}
