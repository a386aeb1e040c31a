package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/timekeeper"
	"toolbox/internal/logger"
	"toolbox/internal/ui/dispatch"
)

// Timer is the countdown panel.
type Timer struct {
	keeper *timekeeper.TimeKeeper
	events <-chan timekeeper.Event
	// OnStatus receives the remaining time while running and "" otherwise.
	OnStatus func(remaining string)
	// OnAlert is called with the dialog text when the countdown finishes.
	OnAlert func(title, message string)

	hours   *widget.Entry
	minutes *widget.Entry
	seconds *widget.Entry
	display *canvas.Text
}

func NewTimer(keeper *timekeeper.TimeKeeper) *Timer {
	return &Timer{keeper: keeper, events: keeper.Subscribe(32)}
}

func (panel *Timer) Title() string       { return "Timer" }
func (panel *Timer) Icon() fyne.Resource { return theme.HistoryIcon() }

func (panel *Timer) Content(win fyne.Window) fyne.CanvasObject {
	panel.display = clockText(timekeeper.FormatClock(0), 48)
	panel.hours = widget.NewEntry()
	panel.minutes = widget.NewEntry()
	panel.seconds = widget.NewEntry()
	for _, entry := range []*widget.Entry{panel.hours, panel.minutes, panel.seconds} {
		entry.SetText("0")
	}

	start := widget.NewButtonWithIcon("Start Timer", theme.MediaPlayIcon(), func() {
		if err := panel.keeper.Start(panel.hours.Text, panel.minutes.Text, panel.seconds.Text); err != nil {
			logger.Debug("timer input rejected", "error", err)
		}
	})
	stop := widget.NewButtonWithIcon("Stop Timer", theme.MediaPauseIcon(), panel.keeper.Stop)
	reset := widget.NewButtonWithIcon("Reset Timer", theme.MediaReplayIcon(), panel.keeper.Reset)

	dispatch.SafeGo("timer.events", func() {
		for event := range panel.events {
			event := event
			dispatch.SafeDo("timer.event", func() { panel.apply(win, event) })
		}
	})

	inputs := container.NewHBox(
		widget.NewLabel("Hours:"), narrowEntry(panel.hours, 64),
		widget.NewLabel("Min:"), narrowEntry(panel.minutes, 64),
		widget.NewLabel("Sec:"), narrowEntry(panel.seconds, 64),
	)
	return container.NewVBox(
		container.NewPadded(panel.display),
		container.NewCenter(inputs),
		container.NewCenter(container.NewHBox(start, stop, reset)),
	)
}

func (panel *Timer) apply(win fyne.Window, event timekeeper.Event) {
	panel.display.Text = event.Display()
	panel.display.Refresh()

	if panel.OnStatus != nil {
		if event.State == timekeeper.StateRunning {
			panel.OnStatus(event.Display())
		} else {
			panel.OnStatus("")
		}
	}
	if event.Type == timekeeper.EventFinished {
		dialog.ShowInformation("Time's Up", "The timer has ended!", win)
		if panel.OnAlert != nil {
			panel.OnAlert("Time's Up", "The timer has ended!")
		}
	}
}

func (panel *Timer) Shutdown() {
	panel.keeper.Shutdown()
}
