// Package timer holds the state of one pomodoro run and the clock
// arithmetic that projects it onto an instant.
package timer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/pomoctl/internal/schedule"
)

var (
	// ErrAlreadyPaused reports a pause on a run that is paused.
	ErrAlreadyPaused = errors.New("pomoctl: pomodoro is already paused")

	// ErrNotPaused reports an unpause on a run that is not paused.
	ErrNotPaused = errors.New("pomoctl: pomodoro is not paused")
)

// State is one pomodoro run, from start until stop. Pausing only affects
// elapsed-time accounting, never the schedule shape.
type State struct {
	ID          string
	Schedule    schedule.Schedule
	StartedAt   time.Time
	PausedAt    *time.Time
	TotalPaused time.Duration
}

// New starts a run of sched at now.
func New(sched schedule.Schedule, now time.Time) *State {
	return &State{
		ID:        uuid.NewString(),
		Schedule:  sched,
		StartedAt: now,
	}
}

// Paused reports whether the run is currently paused.
func (s *State) Paused() bool { return s.PausedAt != nil }

// Pause freezes the clock at now.
func (s *State) Pause(now time.Time) error {
	if s.PausedAt != nil {
		return ErrAlreadyPaused
	}
	at := now
	s.PausedAt = &at
	return nil
}

// Resume unfreezes the clock, folding the pause into TotalPaused.
func (s *State) Resume(now time.Time) error {
	if s.PausedAt == nil {
		return ErrNotPaused
	}
	s.TotalPaused += now.Sub(*s.PausedAt)
	s.PausedAt = nil
	return nil
}

// Elapsed is the effective run time at now: wall-clock time since start
// minus everything spent paused. Never negative.
func (s *State) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(s.StartedAt) - s.TotalPaused
	if s.PausedAt != nil {
		elapsed -= now.Sub(*s.PausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// EndsAt projects the wall-clock end of the run. Pause time pushes the
// end forward, and while paused the projection keeps sliding.
func (s *State) EndsAt(now time.Time) time.Time {
	end := s.StartedAt.Add(s.Schedule.Span() + s.TotalPaused)
	if s.PausedAt != nil {
		end = end.Add(now.Sub(*s.PausedAt))
	}
	return end
}
