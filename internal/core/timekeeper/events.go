package timekeeper

import "time"

// State represents the countdown mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventFinished    EventType = "finished"
)

// Event is a countdown update for observers.
type Event struct {
	Type      EventType
	State     State
	Remaining time.Duration
	At        time.Time
}

// Display renders the remaining time as HH:MM:SS.
func (event Event) Display() string {
	return FormatClock(event.Remaining)
}
