// Package shell hosts the tool panels in one tabbed main window.
package shell

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"toolbox/internal/logger"
)

// Panel is one tool tab.
type Panel interface {
	Title() string
	Icon() fyne.Resource
	Content(win fyne.Window) fyne.CanvasObject
}

// KeyHandler is implemented by panels that take keyboard input while
// selected. Handlers report whether they consumed the event.
type KeyHandler interface {
	TypedRune(r rune) bool
	TypedKey(event *fyne.KeyEvent) bool
}

// Shutdowner is implemented by panels that own goroutines or timers.
type Shutdowner interface {
	Shutdown()
}

type Config struct {
	Title string
	Size  fyne.Size
	// OnSettings, when set, adds a Settings entry to the main menu.
	OnSettings func()
}

// Shell is the main window.
type Shell struct {
	win    fyne.Window
	tabs   *container.AppTabs
	panels []Panel

	background bool
}

// New builds one tab per panel, in order.
func New(app fyne.App, cfg Config, panels []Panel) *Shell {
	win := app.NewWindow(cfg.Title)
	shell := &Shell{win: win, panels: panels}

	items := make([]*container.TabItem, 0, len(panels))
	for _, panel := range panels {
		items = append(items, container.NewTabItemWithIcon(panel.Title(), panel.Icon(), panel.Content(win)))
	}
	shell.tabs = container.NewAppTabs(items...)
	shell.tabs.SetTabLocation(container.TabLocationTop)
	shell.tabs.OnSelected = func(item *container.TabItem) {
		logger.Debug("tool selected", "tool", item.Text)
	}

	win.Canvas().SetOnTypedRune(shell.typedRune)
	win.Canvas().SetOnTypedKey(shell.typedKey)

	if cfg.OnSettings != nil {
		win.SetMainMenu(fyne.NewMainMenu(
			fyne.NewMenu("Toolbox", fyne.NewMenuItem("Settings…", cfg.OnSettings)),
		))
	}
	// closing the main window quits even while other windows are hidden
	win.SetMaster()
	lifecycle := app.Lifecycle()
	lifecycle.SetOnEnteredForeground(func() { shell.setBackground(false) })
	lifecycle.SetOnExitedForeground(func() { shell.setBackground(true) })

	win.SetContent(shell.tabs)
	if cfg.Size.Width > 0 && cfg.Size.Height > 0 {
		win.Resize(cfg.Size)
	}
	return shell
}

func (shell *Shell) Window() fyne.Window { return shell.win }

// Titles lists the tab titles in display order.
func (shell *Shell) Titles() []string {
	titles := make([]string, len(shell.panels))
	for i, panel := range shell.panels {
		titles[i] = panel.Title()
	}
	return titles
}

// Selected returns the index of the visible tab.
func (shell *Shell) Selected() int {
	return shell.tabs.SelectedIndex()
}

// SelectIndex shows the tab at index. Out of range indexes are ignored.
func (shell *Shell) SelectIndex(index int) {
	if index < 0 || index >= len(shell.panels) {
		return
	}
	shell.tabs.SelectIndex(index)
}

// Show brings the window to the front.
func (shell *Shell) Show() {
	shell.win.Show()
	shell.win.RequestFocus()
}

// Background reports whether the application last left the foreground.
// Lifecycle callbacks and readers both run on the UI goroutine.
func (shell *Shell) Background() bool {
	return shell.background
}

func (shell *Shell) setBackground(background bool) {
	if shell.background != background {
		logger.Debug("foreground changed", "background", background)
	}
	shell.background = background
}

// Shutdown stops every panel that owns background work.
func (shell *Shell) Shutdown() {
	for _, panel := range shell.panels {
		if sd, ok := panel.(Shutdowner); ok {
			sd.Shutdown()
		}
	}
}

func (shell *Shell) keyHandler() KeyHandler {
	index := shell.tabs.SelectedIndex()
	if index < 0 || index >= len(shell.panels) {
		return nil
	}
	handler, _ := shell.panels[index].(KeyHandler)
	return handler
}

func (shell *Shell) typedRune(r rune) {
	if handler := shell.keyHandler(); handler != nil {
		handler.TypedRune(r)
	}
}

func (shell *Shell) typedKey(event *fyne.KeyEvent) {
	if handler := shell.keyHandler(); handler != nil {
		handler.TypedKey(event)
	}
}
