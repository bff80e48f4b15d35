// Package timer holds the countdown state and the interval resource that
// drives it.
package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"focusflow/internal/models"
)

var ErrInvalidDuration = errors.New("invalid session duration")

// Session is a countdown measured in whole seconds. It does not own a
// clock: callers deliver ticks while it is running.
type Session struct {
	durationMinutes  int
	remainingSeconds int
	isRunning        bool
}

// NewSession returns a paused session of the given length.
func NewSession(minutes int) *Session {
	s := &Session{}
	s.SetDuration(minutes)
	return s
}

// ClampDuration bounds minutes to the accepted session lengths.
func ClampDuration(minutes int) int {
	if minutes < models.MinDurationMinutes {
		return models.MinDurationMinutes
	}
	if minutes > models.MaxDurationMinutes {
		return models.MaxDurationMinutes
	}
	return minutes
}

// ParseDuration reads the duration field. Out-of-range numbers are clamped,
// anything that is not an integer is rejected.
func ParseDuration(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}
	return ClampDuration(n), nil
}

// SetDuration changes the session length. While paused the remaining time
// follows the new length; a running countdown keeps going.
func (s *Session) SetDuration(minutes int) {
	s.durationMinutes = ClampDuration(minutes)
	if !s.isRunning {
		s.remainingSeconds = s.fullSeconds()
	}
}

// Toggle starts a paused session or pauses a running one.
func (s *Session) Toggle() {
	s.isRunning = !s.isRunning
}

func (s *Session) Start() {
	s.isRunning = true
}

func (s *Session) Pause() {
	s.isRunning = false
}

// Reset stops the session and rewinds it to its full length.
func (s *Session) Reset() {
	s.isRunning = false
	s.remainingSeconds = s.fullSeconds()
}

// Tick advances the countdown by one second and reports whether the
// session just completed. A completed session is stopped and rewound to
// its full length. Ticks while paused or at zero are ignored.
func (s *Session) Tick() bool {
	if !s.isRunning || s.remainingSeconds <= 0 {
		return false
	}
	s.remainingSeconds--
	if s.remainingSeconds > 0 {
		return false
	}
	s.isRunning = false
	s.remainingSeconds = s.fullSeconds()
	return true
}

func (s *Session) IsRunning() bool {
	return s.isRunning
}

func (s *Session) DurationMinutes() int {
	return s.durationMinutes
}

func (s *Session) RemainingSeconds() int {
	return s.remainingSeconds
}

// State returns a copy for rendering.
func (s *Session) State() models.Session {
	return models.Session{
		DurationMinutes:  s.durationMinutes,
		RemainingSeconds: s.remainingSeconds,
		IsRunning:        s.isRunning,
	}
}

func (s *Session) fullSeconds() int {
	return s.durationMinutes * 60
}

// Format renders seconds as MM:SS. Minutes are not rolled into hours.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
