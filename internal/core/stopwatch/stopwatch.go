package stopwatch

import (
	"fmt"
	"sync"
	"time"
)

// Clock returns the current instant. Tests substitute a fake.
type Clock func() time.Time

// Lap is a recorded split.
type Lap struct {
	Number int
	Time   time.Duration
}

func (lap Lap) String() string {
	return fmt.Sprintf("Lap %d: %s", lap.Number, Format(lap.Time))
}

// Stopwatch measures elapsed time across start/stop cycles.
type Stopwatch struct {
	mu        sync.Mutex
	now       Clock
	reference time.Time
	elapsed   time.Duration
	running   bool
	laps      []Lap
}

// New returns a stopped stopwatch. A nil clock means time.Now.
func New(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{now: clock}
}

// Start resumes measuring from the accumulated elapsed time. It reports
// false when the stopwatch was already running.
func (watch *Stopwatch) Start() bool {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.running {
		return false
	}
	watch.reference = watch.now().Add(-watch.elapsed)
	watch.running = true
	return true
}

// Stop freezes the elapsed time.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.running {
		return
	}
	watch.elapsed = watch.sampleLocked()
	watch.running = false
}

// Reset stops the stopwatch, zeroes the elapsed time and clears all laps.
func (watch *Stopwatch) Reset() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.running = false
	watch.elapsed = 0
	watch.laps = nil
}

// Lap records the current elapsed time. Laps are only taken while running.
func (watch *Stopwatch) Lap() (Lap, bool) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.running {
		return Lap{}, false
	}
	watch.elapsed = watch.sampleLocked()
	lap := Lap{Number: len(watch.laps) + 1, Time: watch.elapsed}
	watch.laps = append(watch.laps, lap)
	return lap, true
}

// Elapsed returns the elapsed time, sampling the clock while running.
func (watch *Stopwatch) Elapsed() time.Duration {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.running {
		watch.elapsed = watch.sampleLocked()
	}
	return watch.elapsed
}

func (watch *Stopwatch) Running() bool {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.running
}

// Laps returns a copy of the recorded laps in order.
func (watch *Stopwatch) Laps() []Lap {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return append([]Lap(nil), watch.laps...)
}

func (watch *Stopwatch) sampleLocked() time.Duration {
	elapsed := watch.now().Sub(watch.reference)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Format renders elapsed time as HH:MM:SS.ss.
func Format(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	total := value.Seconds()
	minutes := int64(total) / 60
	seconds := total - float64(minutes*60)
	return fmt.Sprintf("%02d:%02d:%05.2f", minutes/60, minutes%60, seconds)
}
