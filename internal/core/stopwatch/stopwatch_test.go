package stopwatch

import (
	"testing"
	"time"
)

type fakeClock struct {
	current time.Time
}

func (clock *fakeClock) now() time.Time { return clock.current }

func (clock *fakeClock) advance(d time.Duration) { clock.current = clock.current.Add(d) }

func newFake() (*Stopwatch, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return New(clock.now), clock
}

func TestElapsedAcrossStartStop(t *testing.T) {
	watch, clock := newFake()

	watch.Start()
	clock.advance(3 * time.Second)
	watch.Stop()
	clock.advance(10 * time.Second)

	if got := watch.Elapsed(); got != 3*time.Second {
		t.Fatalf("elapsed = %v, want 3s", got)
	}

	watch.Start()
	clock.advance(2 * time.Second)
	if got := watch.Elapsed(); got != 5*time.Second {
		t.Fatalf("resumed elapsed = %v, want 5s", got)
	}
}

func TestStartTwiceKeepsReference(t *testing.T) {
	watch, clock := newFake()
	if !watch.Start() {
		t.Fatalf("first start rejected")
	}
	clock.advance(time.Second)
	if watch.Start() {
		t.Fatalf("second start accepted")
	}
	clock.advance(time.Second)
	if got := watch.Elapsed(); got != 2*time.Second {
		t.Fatalf("elapsed = %v", got)
	}
}

func TestLapsNumberedFromOne(t *testing.T) {
	watch, clock := newFake()

	if _, ok := watch.Lap(); ok {
		t.Fatalf("lap recorded while stopped")
	}

	watch.Start()
	for i := 1; i <= 3; i++ {
		clock.advance(1500 * time.Millisecond)
		lap, ok := watch.Lap()
		if !ok {
			t.Fatalf("lap %d not recorded", i)
		}
		if lap.Number != i {
			t.Fatalf("lap number = %d, want %d", lap.Number, i)
		}
	}

	laps := watch.Laps()
	if len(laps) != 3 {
		t.Fatalf("laps = %d", len(laps))
	}
	for i := 1; i < len(laps); i++ {
		if laps[i].Number <= laps[i-1].Number || laps[i].Time <= laps[i-1].Time {
			t.Fatalf("laps not increasing: %+v", laps)
		}
	}
	if got := laps[1].String(); got != "Lap 2: 00:00:03.00" {
		t.Fatalf("lap string = %q", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	watch, clock := newFake()
	watch.Start()
	clock.advance(4 * time.Second)
	watch.Lap()
	watch.Reset()

	if watch.Running() {
		t.Fatalf("still running after reset")
	}
	if watch.Elapsed() != 0 || len(watch.Laps()) != 0 {
		t.Fatalf("reset left elapsed=%v laps=%d", watch.Elapsed(), len(watch.Laps()))
	}

	watch.Start()
	clock.advance(time.Second)
	if lap, _ := watch.Lap(); lap.Number != 1 {
		t.Fatalf("lap numbering not restarted: %d", lap.Number)
	}
}

func TestRealClockWithinTolerance(t *testing.T) {
	watch := New(nil)
	watch.Start()
	time.Sleep(50 * time.Millisecond)
	watch.Stop()

	got := watch.Elapsed()
	if got < 50*time.Millisecond || got > 500*time.Millisecond {
		t.Fatalf("elapsed = %v, want about 50ms", got)
	}
}

func TestFormat(t *testing.T) {
	cases := map[time.Duration]string{
		0:                                     "00:00:00.00",
		5230 * time.Millisecond:               "00:00:05.23",
		61*time.Second + 500*time.Millisecond: "00:01:01.50",
		2*time.Hour + 3*time.Minute:           "02:03:00.00",
	}
	for in, want := range cases {
		if got := Format(in); got != want {
			t.Errorf("Format(%v) = %q, want %q", in, got, want)
		}
	}
}
