package models

import (
	"math"
	"time"
)

// TimerState enumerates the states of the timer.
type TimerState string

const (
	StateIdle    TimerState = "idle"
	StateRunning TimerState = "running"
)

// Session is the single countable timing session.
type Session struct {
	ElapsedSeconds int
	Running        bool
}

// Minutes returns the whole minutes elapsed.
func (s Session) Minutes() int {
	return s.ElapsedSeconds / 60
}

// Seconds returns the seconds within the current minute.
func (s Session) Seconds() int {
	return s.ElapsedSeconds % 60
}

// State reports Idle or Running.
func (s Session) State() TimerState {
	if s.Running {
		return StateRunning
	}
	return StateIdle
}

// Note represents a single entry in the notes list.
type Note struct {
	ID        string
	Text      string
	Realized  bool
	CreatedAt time.Time
}

// DaysAgo returns the number of calendar days between creation and now.
func (n Note) DaysAgo(now time.Time) int {
	if n.CreatedAt.IsZero() {
		return 0
	}
	created := n.CreatedAt.In(now.Location())
	from := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, now.Location())
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(to.Sub(from).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
