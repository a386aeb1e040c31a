package alarm

import (
	"errors"
	"sync"
	"testing"
	"time"

	"toolbox/internal/apperrors"
)

func TestNextOccurrence(t *testing.T) {
	loc := time.FixedZone("test", 3*3600)
	now := time.Date(2026, 3, 14, 15, 30, 0, 0, loc)

	cases := []struct {
		name    string
		h, m, s int
		want    time.Time
	}{
		{"later today", 16, 0, 0, time.Date(2026, 3, 14, 16, 0, 0, 0, loc)},
		{"earlier today rolls over", 9, 15, 0, time.Date(2026, 3, 15, 9, 15, 0, 0, loc)},
		{"exactly now rolls over", 15, 30, 0, time.Date(2026, 3, 15, 15, 30, 0, 0, loc)},
		{"one second ahead", 15, 30, 1, time.Date(2026, 3, 14, 15, 30, 1, 0, loc)},
	}
	for _, tc := range cases {
		got, err := NextOccurrence(now, tc.h, tc.m, tc.s)
		if err != nil {
			t.Fatalf("%s: error %v", tc.name, err)
		}
		if !got.Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestNextOccurrenceMonthEnd(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	got, err := NextOccurrence(now, 6, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2027, 1, 1, 6, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceRejectsOutOfRange(t *testing.T) {
	now := time.Now()
	for _, in := range [][3]int{{24, 0, 0}, {-1, 0, 0}, {0, 60, 0}, {0, 0, 60}, {0, -5, 0}} {
		if _, err := NextOccurrence(now, in[0], in[1], in[2]); !apperrors.Is(err, apperrors.KindValidation) {
			t.Errorf("NextOccurrence(%v) err = %v", in, err)
		}
	}
}

func TestParseTime(t *testing.T) {
	h, m, s, err := ParseTime("7", " 05", "59")
	if err != nil || h != 7 || m != 5 || s != 59 {
		t.Fatalf("ParseTime() = %d %d %d %v", h, m, s, err)
	}
	if _, _, _, err := ParseTime("x", "0", "0"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("err = %v", err)
	}
}

type recordingBeeper struct {
	mu     sync.Mutex
	pulses []float64
	fail   error
}

func (b *recordingBeeper) Beep(freq float64, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pulses = append(b.pulses, freq)
	return b.fail
}

func (b *recordingBeeper) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pulses)
}

type manualSchedule struct {
	delays []time.Duration
	fires  []func()
}

func (m *manualSchedule) schedule(delay time.Duration, fire func()) {
	m.delays = append(m.delays, delay)
	m.fires = append(m.fires, fire)
}

func TestSchedulerFiresAfterAllPulses(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	manual := &manualSchedule{}
	beeper := &recordingBeeper{}

	var fired []Alarm
	var pulsesAtFire int
	sched := NewScheduler(Config{
		Now:      func() time.Time { return now },
		Schedule: manual.schedule,
	}, beeper, func(a Alarm) {
		pulsesAtFire = beeper.count()
		fired = append(fired, a)
	})

	a, err := sched.Set(8, 0, 30)
	if err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := a.Status(); got != "Alarm set for: 2026-05-01 08:00:30" {
		t.Fatalf("status = %q", got)
	}
	if len(manual.delays) != 1 || manual.delays[0] != 30*time.Second {
		t.Fatalf("delays = %v", manual.delays)
	}
	if len(sched.Pending()) != 1 {
		t.Fatalf("pending = %v", sched.Pending())
	}

	manual.fires[0]()

	if len(fired) != 1 || !fired[0].Fired || fired[0].ID != a.ID {
		t.Fatalf("fired = %+v", fired)
	}
	if pulsesAtFire != DefaultPulse().Count {
		t.Fatalf("notification after %d pulses, want %d", pulsesAtFire, DefaultPulse().Count)
	}
	if len(sched.Pending()) != 0 {
		t.Fatalf("alarm still pending after firing")
	}
}

func TestSchedulerMultipleAlarms(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	manual := &manualSchedule{}
	sched := NewScheduler(Config{Now: func() time.Time { return now }, Schedule: manual.schedule}, nil, nil)

	late, _ := sched.Set(18, 0, 0)
	early, _ := sched.Set(13, 0, 0)
	pending := sched.Pending()
	if len(pending) != 2 || pending[0].ID != early.ID || pending[1].ID != late.ID {
		t.Fatalf("pending = %+v", pending)
	}
	if late.ID == early.ID {
		t.Fatalf("ids not unique")
	}
}

func TestSchedulerStopsPulsesOnBeepError(t *testing.T) {
	manual := &manualSchedule{}
	beeper := &recordingBeeper{fail: errors.New("no audio device")}
	notified := false
	sched := NewScheduler(Config{Schedule: manual.schedule, Pulse: Pulse{Count: 3, Frequency: 440, Duration: time.Millisecond}},
		beeper, func(Alarm) { notified = true })

	if _, err := sched.Set(time.Now().Hour(), 0, 0); err != nil {
		t.Fatal(err)
	}
	manual.fires[0]()
	if beeper.count() != 1 || !notified {
		t.Fatalf("pulses = %d, notified = %v", beeper.count(), notified)
	}
}

func TestSchedulerRealTimer(t *testing.T) {
	done := make(chan Alarm, 1)
	now := time.Date(2026, 5, 1, 9, 59, 59, 999_000_000, time.UTC)
	sched := NewScheduler(Config{
		Now:   func() time.Time { return now },
		Pulse: Pulse{Count: 2, Frequency: 1000, Duration: time.Millisecond},
	}, &recordingBeeper{}, func(a Alarm) { done <- a })

	if _, err := sched.Set(10, 0, 0); err != nil {
		t.Fatal(err)
	}
	select {
	case a := <-done:
		if !a.Fired {
			t.Fatalf("alarm not marked fired")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("alarm did not fire")
	}
}

func TestSetPulseIgnoresEmpty(t *testing.T) {
	sched := NewScheduler(Config{}, nil, nil)
	sched.SetPulse(Pulse{})
	if sched.options.Pulse != DefaultPulse() {
		t.Fatalf("pulse = %+v", sched.options.Pulse)
	}
	sched.SetPulse(Pulse{Count: 2, Frequency: 800, Duration: time.Second})
	if sched.options.Pulse.Count != 2 {
		t.Fatalf("pulse not updated")
	}
}
