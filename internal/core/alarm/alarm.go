// Package alarm computes wall-clock alarm targets and fires them once.
package alarm

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"toolbox/internal/apperrors"
	"toolbox/internal/logger"
)

const statusLayout = "2006-01-02 15:04:05"

// ErrInvalidTime rejects an hour, minute or second outside the clock range.
var ErrInvalidTime = apperrors.Validation("Invalid alarm time!")

// Beeper plays one tone and returns once it has finished.
type Beeper interface {
	Beep(frequency float64, duration time.Duration) error
}

// Pulse describes the tone sequence played when an alarm fires.
type Pulse struct {
	Count     int
	Frequency float64
	Duration  time.Duration
}

// DefaultPulse is eight 1 kHz beeps of half a second each.
func DefaultPulse() Pulse {
	return Pulse{Count: 8, Frequency: 1000, Duration: 500 * time.Millisecond}
}

// Alarm is one scheduled target time.
type Alarm struct {
	ID     int
	Target time.Time
	Fired  bool
}

// Status is the text the panel shows once an alarm is set.
func (alarm Alarm) Status() string {
	return "Alarm set for: " + alarm.Target.Format(statusLayout)
}

// Config holds the clock hooks and the beep pattern used on fire.
type Config struct {
	Now func() time.Time
	// Schedule runs fire once after delay. Defaults to time.AfterFunc.
	Schedule func(delay time.Duration, fire func())
	Pulse    Pulse
}

// Scheduler keeps the set alarms and fires each one once.
type Scheduler struct {
	mu      sync.Mutex
	options Config
	beeper  Beeper
	onFire  func(Alarm)
	alarms  []*Alarm
	nextID  int
	log     *slog.Logger
}

// NewScheduler returns a scheduler. onFire runs on the firing goroutine
// after the whole beep sequence has played.
func NewScheduler(cfg Config, beeper Beeper, onFire func(Alarm)) *Scheduler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Schedule == nil {
		cfg.Schedule = func(delay time.Duration, fire func()) { time.AfterFunc(delay, fire) }
	}
	if cfg.Pulse.Count <= 0 {
		cfg.Pulse = DefaultPulse()
	}
	if onFire == nil {
		onFire = func(Alarm) {}
	}
	return &Scheduler{
		options: cfg,
		beeper:  beeper,
		onFire:  onFire,
		log:     logger.With("alarm"),
	}
}

// SetPulse changes the tone sequence for alarms that have not fired yet.
func (scheduler *Scheduler) SetPulse(p Pulse) {
	if p.Count <= 0 {
		return
	}
	scheduler.mu.Lock()
	scheduler.options.Pulse = p
	scheduler.mu.Unlock()
}

// Set validates the time of day and schedules a one-shot alarm at its next
// occurrence. Alarms cannot be cancelled.
func (scheduler *Scheduler) Set(hour, minute, second int) (Alarm, error) {
	now := scheduler.options.Now()
	target, err := NextOccurrence(now, hour, minute, second)
	if err != nil {
		return Alarm{}, err
	}

	scheduler.mu.Lock()
	scheduler.nextID++
	a := &Alarm{ID: scheduler.nextID, Target: target}
	scheduler.alarms = append(scheduler.alarms, a)
	scheduler.mu.Unlock()

	delay := target.Sub(now)
	scheduler.log.Info("alarm set", "id", a.ID, "target", target.Format(statusLayout), "delay", delay)
	scheduler.options.Schedule(delay, func() { scheduler.fire(a.ID) })
	return *a, nil
}

// Pending returns alarms that have not fired yet, earliest first.
func (scheduler *Scheduler) Pending() []Alarm {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var out []Alarm
	for _, a := range scheduler.alarms {
		if !a.Fired {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target.Before(out[j].Target) })
	return out
}

func (scheduler *Scheduler) fire(id int) {
	scheduler.mu.Lock()
	var target *Alarm
	for _, a := range scheduler.alarms {
		if a.ID == id {
			target = a
		}
	}
	pulse := scheduler.options.Pulse
	scheduler.mu.Unlock()
	if target == nil {
		return
	}

	scheduler.log.Info("alarm firing", "id", id, "beeps", pulse.Count)
	if scheduler.beeper != nil {
		for i := 0; i < pulse.Count; i++ {
			if err := scheduler.beeper.Beep(pulse.Frequency, pulse.Duration); err != nil {
				scheduler.log.Warn("beep failed, skipping remaining pulses", "error", err)
				break
			}
		}
	}

	scheduler.mu.Lock()
	target.Fired = true
	fired := *target
	scheduler.mu.Unlock()
	scheduler.onFire(fired)
}

// NextOccurrence returns today at hour:minute:second when that is strictly
// after now, otherwise the same time tomorrow.
func NextOccurrence(now time.Time, hour, minute, second int) (time.Time, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}, apperrors.New(apperrors.KindValidation, "Invalid alarm time!",
			fmt.Errorf("time %02d:%02d:%02d out of range", hour, minute, second))
	}
	y, m, d := now.Date()
	target := time.Date(y, m, d, hour, minute, second, 0, now.Location())
	if !target.After(now) {
		target = time.Date(y, m, d+1, hour, minute, second, 0, now.Location())
	}
	return target, nil
}

// ParseTime reads the three spin-box values.
func ParseTime(hour, minute, second string) (int, int, int, error) {
	var out [3]int
	for i, field := range []string{hour, minute, second} {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0, 0, 0, ErrInvalidTime
		}
		out[i] = v
	}
	return out[0], out[1], out[2], nil
}
