package timekeeper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrInvalidDuration is returned when an input field is not a non-negative integer.
var ErrInvalidDuration = errors.New("invalid countdown duration")

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
}

// TimeKeeper is a countdown state machine ticking once per interval.
type TimeKeeper struct {
	mu        sync.Mutex
	options   Config
	state     State
	remaining time.Duration
	events    []chan Event
	stopCh    chan struct{}
	closed    bool
}

// New creates an idle TimeKeeper.
func New(options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &TimeKeeper{
		options: options,
		state:   StateIdle,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		close(ch)
	} else {
		keeper.events = append(keeper.events, ch)
	}
	keeper.mu.Unlock()
	return ch
}

// ParseDuration converts hour/minute/second fields into a duration.
func ParseDuration(hours, minutes, seconds string) (time.Duration, error) {
	fields := []string{hours, minutes, seconds}
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	var total time.Duration
	for i, field := range fields {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || value < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, field)
		}
		total += time.Duration(value) * units[i]
	}
	return total, nil
}

// Start begins counting down. A paused countdown resumes from its remaining
// time and the inputs are ignored; otherwise the inputs are parsed and a zero
// total is a no-op.
func (keeper *TimeKeeper) Start(hours, minutes, seconds string) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.closed || keeper.state == StateRunning {
		return nil
	}
	if keeper.state == StatePaused && keeper.remaining > 0 {
		keeper.startLocked()
		return nil
	}

	total, err := ParseDuration(hours, minutes, seconds)
	if err != nil {
		return err
	}
	if total <= 0 {
		return nil
	}
	keeper.remaining = total
	keeper.startLocked()
	return nil
}

// Stop pauses the countdown and keeps the remaining time.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != StateRunning {
		return
	}
	keeper.haltLocked()
	keeper.state = StatePaused
	keeper.emitLocked(Event{Type: EventStateChange, State: StatePaused, Remaining: keeper.remaining, At: time.Now()})
}

// Reset stops the countdown and clears the remaining time.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.haltLocked()
	keeper.state = StateIdle
	keeper.remaining = 0
	keeper.emitLocked(Event{Type: EventStateChange, State: StateIdle, At: time.Now()})
}

// Shutdown stops ticking and closes all observers.
func (keeper *TimeKeeper) Shutdown() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.haltLocked()
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// State returns the current mode.
func (keeper *TimeKeeper) State() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Remaining returns the stored remaining time.
func (keeper *TimeKeeper) Remaining() time.Duration {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.remaining
}

func (keeper *TimeKeeper) startLocked() {
	keeper.state = StateRunning
	keeper.stopCh = make(chan struct{})
	now := time.Now()
	keeper.emitLocked(Event{Type: EventStateChange, State: StateRunning, Remaining: keeper.remaining, At: now})
	keeper.emitLocked(Event{Type: EventTick, State: StateRunning, Remaining: keeper.remaining, At: now})
	go keeper.run(keeper.stopCh)
}

func (keeper *TimeKeeper) haltLocked() {
	if keeper.stopCh != nil {
		close(keeper.stopCh)
		keeper.stopCh = nil
	}
}

func (keeper *TimeKeeper) run(stopCh chan struct{}) {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			if !keeper.tick(stopCh, tickTime) {
				return
			}
		}
	}
}

// tick advances the countdown by one interval and reports whether ticking
// continues. Ticks from a loop that has since been stopped are ignored.
func (keeper *TimeKeeper) tick(stopCh chan struct{}, tickTime time.Time) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.state != StateRunning || keeper.stopCh != stopCh {
		return false
	}

	keeper.remaining -= keeper.options.TickInterval
	if keeper.remaining > 0 {
		keeper.emitLocked(Event{Type: EventTick, State: StateRunning, Remaining: keeper.remaining, At: tickTime})
		return true
	}

	keeper.remaining = 0
	keeper.state = StateFinished
	keeper.stopCh = nil
	keeper.emitLocked(Event{Type: EventTick, State: StateFinished, At: tickTime})
	keeper.emitLocked(Event{Type: EventFinished, State: StateFinished, At: tickTime})
	return false
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

// FormatClock renders a duration as HH:MM:SS, truncating sub-second parts.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	total := int64(value / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
