package panels

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/schedule"
	"toolbox/internal/core/stopwatch"
	"toolbox/internal/ui/dispatch"
)

const stopwatchRefresh = 10 * time.Millisecond

// Stopwatch is the elapsed-time panel with laps.
type Stopwatch struct {
	watch  *stopwatch.Stopwatch
	runner schedule.Runner

	display *canvas.Text
	laps    *widget.List
	rows    []string
}

func NewStopwatch(watch *stopwatch.Stopwatch) *Stopwatch {
	return &Stopwatch{watch: watch}
}

func (panel *Stopwatch) Title() string       { return "Stopwatch" }
func (panel *Stopwatch) Icon() fyne.Resource { return theme.MediaRecordIcon() }

func (panel *Stopwatch) Content(fyne.Window) fyne.CanvasObject {
	panel.display = clockText(stopwatch.Format(0), 48)
	panel.laps = widget.NewList(
		func() int { return len(panel.rows) },
		func() fyne.CanvasObject { return widget.NewLabel("Lap 00: 00:00:00.00") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(panel.rows[id])
		},
	)

	start := widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), panel.start)
	stop := widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), panel.stop)
	reset := widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), panel.reset)
	lap := widget.NewButtonWithIcon("Lap", theme.ContentAddIcon(), panel.lap)

	top := container.NewVBox(container.NewPadded(panel.display))
	controls := container.NewCenter(container.NewHBox(start, stop, reset, lap))
	return container.NewBorder(top, controls, nil, nil, panel.laps)
}

func (panel *Stopwatch) start() {
	if !panel.watch.Start() {
		return
	}
	panel.runner.Every(context.Background(), stopwatchRefresh, func() bool {
		dispatch.SafeDo("stopwatch.tick", func() { panel.show(panel.watch.Elapsed()) })
		return panel.watch.Running()
	})
}

func (panel *Stopwatch) stop() {
	panel.watch.Stop()
	panel.runner.Stop()
	panel.show(panel.watch.Elapsed())
}

func (panel *Stopwatch) reset() {
	panel.watch.Reset()
	panel.runner.Stop()
	panel.rows = nil
	panel.laps.Refresh()
	panel.show(0)
}

func (panel *Stopwatch) lap() {
	lap, ok := panel.watch.Lap()
	if !ok {
		return
	}
	panel.rows = append(panel.rows, lap.String())
	panel.laps.Refresh()
	panel.laps.ScrollToBottom()
}

func (panel *Stopwatch) show(elapsed time.Duration) {
	panel.display.Text = stopwatch.Format(elapsed)
	panel.display.Refresh()
}

func (panel *Stopwatch) Shutdown() {
	panel.runner.Stop()
}
