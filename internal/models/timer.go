package models

import "time"

const (
	MinDurationMinutes     = 1
	MaxDurationMinutes     = 120
	DefaultDurationMinutes = 25
)

// Session is the countdown state rendered by the views.
type Session struct {
	DurationMinutes  int
	RemainingSeconds int
	IsRunning        bool
}

// CompletedSession describes a countdown that ran to zero.
type CompletedSession struct {
	DurationMinutes int
	// FocusSeconds counts the ticks spent running, which differs from the
	// configured length when the duration changed mid-session.
	FocusSeconds int
	StartedAt    time.Time
	FinishedAt   time.Time
}
