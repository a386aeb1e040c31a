package panels

import (
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"toolbox/internal/core/alarm"
	"toolbox/internal/core/model"
	"toolbox/internal/logger"
	"toolbox/internal/ui/dispatch"
)

// Notifier posts a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Alarm sets one-shot wall-clock alarms.
type Alarm struct {
	scheduler *alarm.Scheduler
	notifier  Notifier

	mu     sync.Mutex
	notify bool

	// OnStatus receives the next pending alarm time, or "" when none is left.
	OnStatus func(next string)
	OnAlert  func(title, message string)

	win    fyne.Window
	hour   *widget.Entry
	minute *widget.Entry
	second *widget.Entry
	status *widget.Label
}

func NewAlarm(cfg model.AlarmConfig, beeper alarm.Beeper, notifier Notifier) *Alarm {
	panel := &Alarm{notifier: notifier, notify: cfg.Notify}
	panel.scheduler = alarm.NewScheduler(alarm.Config{Pulse: pulseOf(cfg)}, beeper, panel.fired)
	return panel
}

func pulseOf(cfg model.AlarmConfig) alarm.Pulse {
	return alarm.Pulse{Count: cfg.BeepCount, Frequency: cfg.BeepFrequency, Duration: cfg.BeepDuration}
}

func (panel *Alarm) Title() string       { return "Alarm" }
func (panel *Alarm) Icon() fyne.Resource { return theme.WarningIcon() }

func (panel *Alarm) Content(win fyne.Window) fyne.CanvasObject {
	panel.win = win
	panel.hour = widget.NewEntry()
	panel.minute = widget.NewEntry()
	panel.second = widget.NewEntry()
	panel.hour.SetText(strconv.Itoa(time.Now().Hour()))
	panel.minute.SetText("0")
	panel.second.SetText("0")
	panel.status = widget.NewLabelWithStyle("No alarm set", fyne.TextAlignCenter, fyne.TextStyle{})

	inputs := container.NewHBox(
		widget.NewLabel("Hour (0-23):"), narrowEntry(panel.hour, 64),
		widget.NewLabel("Min:"), narrowEntry(panel.minute, 64),
		widget.NewLabel("Sec:"), narrowEntry(panel.second, 64),
	)
	return container.NewVBox(
		heading("Set Alarm"),
		container.NewCenter(inputs),
		container.NewCenter(widget.NewButtonWithIcon("Set Alarm", theme.ConfirmIcon(), panel.set)),
		panel.status,
	)
}

// SetConfig changes the tone sequence and notification flag for alarms
// that have not fired yet.
func (panel *Alarm) SetConfig(cfg model.AlarmConfig) {
	panel.scheduler.SetPulse(pulseOf(cfg))
	panel.mu.Lock()
	panel.notify = cfg.Notify
	panel.mu.Unlock()
}

func (panel *Alarm) set() {
	h, m, s, err := alarm.ParseTime(panel.hour.Text, panel.minute.Text, panel.second.Text)
	if err == nil {
		var a alarm.Alarm
		a, err = panel.scheduler.Set(h, m, s)
		if err == nil {
			panel.status.SetText(a.Status())
			panel.publish()
			return
		}
	}
	showError(panel.win, "alarm", err)
}

// fired runs on the scheduler goroutine after the beeps have played.
func (panel *Alarm) fired(a alarm.Alarm) {
	panel.mu.Lock()
	notify := panel.notify
	panel.mu.Unlock()
	if notify && panel.notifier != nil {
		if err := panel.notifier.Notify("Alarm", "Alarm time reached!"); err != nil {
			logger.Warn("desktop notification failed", "error", err)
		}
	}
	dispatch.SafeDo("alarm.fired", func() {
		if len(panel.scheduler.Pending()) == 0 && panel.status != nil {
			panel.status.SetText("No alarm set")
		}
		panel.publish()
		if panel.win != nil {
			dialog.ShowInformation("Alarm", "Alarm time reached!", panel.win)
		}
		if panel.OnAlert != nil {
			panel.OnAlert("Alarm", "Alarm time reached!")
		}
	})
	logger.Info("alarm fired", "id", a.ID)
}

func (panel *Alarm) publish() {
	if panel.OnStatus == nil {
		return
	}
	pending := panel.scheduler.Pending()
	if len(pending) == 0 {
		panel.OnStatus("")
		return
	}
	panel.OnStatus(pending[0].Target.Format("15:04:05"))
}
