// Package notice shows a small undecorated alert window. It is used when a
// timer or alarm fires while the main window is hidden in the tray.
package notice

import (
	"context"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/schedule"
	"toolbox/internal/ui/dispatch"
)

const (
	widthFraction       = float32(0.18)
	heightFraction      = float32(0.14)
	defaultScreenWidth  = float32(1920)
	defaultScreenHeight = float32(1080)

	DefaultAutoDismiss = 30 * time.Second
)

var accent = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

type Config struct {
	// AutoDismiss hides the window after this long. Zero keeps it until dismissed.
	AutoDismiss time.Duration
	Now         func() time.Time
}

// Window is a reusable alert window.
type Window struct {
	window  fyne.Window
	config  Config
	title   *canvas.Text
	message *canvas.Text
	stamp   *canvas.Text
	dismiss *widget.Button
	runner  schedule.Runner
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

func New(app fyne.App, config Config) *Window {
	if config.Now == nil {
		config.Now = time.Now
	}
	window := app.NewWindow("Toolbox")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	title := canvas.NewText("", accent)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 21
	message := canvas.NewText("", color.White)
	message.TextSize = 15
	stamp := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	stamp.TextStyle = fyne.TextStyle{Monospace: true}
	stamp.TextSize = 13

	notice := &Window{
		window:  window,
		config:  config,
		title:   title,
		message: message,
		stamp:   stamp,
	}
	notice.dismiss = widget.NewButton("Dismiss", notice.Hide)

	background := canvas.NewRectangle(color.NRGBA{A: 230})
	content := container.New(&stackLayout{}, title, message, stamp, notice.dismiss)
	window.SetContent(container.NewStack(background, content))
	window.SetCloseIntercept(notice.Hide)
	return notice
}

// Show displays title and message and restarts the auto-dismiss countdown.
// It must run on the UI goroutine.
func (notice *Window) Show(title, message string) {
	notice.title.Text = title
	notice.message.Text = message
	notice.stamp.Text = notice.config.Now().Format("15:04:05")
	for _, text := range []*canvas.Text{notice.title, notice.message, notice.stamp} {
		text.Refresh()
	}
	notice.resizeToScreenFraction()
	notice.window.Show()
	notice.window.RequestFocus()

	if notice.config.AutoDismiss > 0 {
		notice.runner.After(context.Background(), notice.config.AutoDismiss, func() {
			dispatch.SafeDo("notice.dismiss", notice.window.Hide)
		})
	}
}

func (notice *Window) Hide() {
	notice.runner.Stop()
	notice.window.Hide()
}

// Text returns the title and message currently shown.
func (notice *Window) Text() (string, string) {
	return notice.title.Text, notice.message.Text
}

func (notice *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := notice.window.Canvas().Size()
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * widthFraction
	height := screenSize.Height * heightFraction
	minSize := notice.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}
	notice.window.Resize(fyne.NewSize(width, height))
	notice.window.CenterOnScreen()
}

// stackLayout puts title, message and timestamp top-down and pins the
// button to the bottom-right corner.
type stackLayout struct{}

func (layout *stackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	title, message, stamp, button := objects[0], objects[1], objects[2], objects[3]

	pad := size.Height * 0.08
	width := size.Width - pad*2
	if width < 0 {
		width = 0
	}

	y := pad
	for _, obj := range []fyne.CanvasObject{title, message} {
		h := obj.MinSize().Height
		obj.Move(fyne.NewPos(pad, y))
		obj.Resize(fyne.NewSize(width, h))
		y += h + 6
	}

	buttonSize := button.MinSize()
	buttonSize.Width *= 1.4
	bottom := size.Height - pad - buttonSize.Height
	if bottom < y {
		bottom = y
	}
	button.Move(fyne.NewPos(size.Width-pad-buttonSize.Width, bottom))
	button.Resize(buttonSize)

	stampSize := stamp.MinSize()
	stamp.Move(fyne.NewPos(pad, bottom+(buttonSize.Height-stampSize.Height)/2))
	stamp.Resize(stampSize)
}

func (layout *stackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	title, message, stamp, button := objects[0].MinSize(), objects[1].MinSize(), objects[2].MinSize(), objects[3].MinSize()

	width := title.Width
	if message.Width > width {
		width = message.Width
	}
	if row := stamp.Width + button.Width*1.4 + 12; row > width {
		width = row
	}
	footer := button.Height
	if stamp.Height > footer {
		footer = stamp.Height
	}
	return fyne.NewSize(width+24, title.Height+message.Height+footer+36)
}
