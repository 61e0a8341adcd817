package store

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/schedule"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

// record is the on-disk shape of a run. Instants use RFC3339Nano and
// durations Go duration strings, so sub-second values survive the round
// trip.
type record struct {
	ID          string `yaml:"id"`
	Repetitions int    `yaml:"repetitions"`
	Work        string `yaml:"work"`
	Break       string `yaml:"break"`
	StartedAt   string `yaml:"started_at"`
	PausedAt    string `yaml:"paused_at,omitempty"`
	TotalPaused string `yaml:"total_paused"`
}

func newRecord(st *timer.State) record {
	rec := record{
		ID:          st.ID,
		Repetitions: st.Schedule.Repetitions,
		Work:        st.Schedule.Work.String(),
		Break:       st.Schedule.Break.String(),
		StartedAt:   st.StartedAt.Format(time.RFC3339Nano),
		TotalPaused: st.TotalPaused.String(),
	}
	if st.PausedAt != nil {
		rec.PausedAt = st.PausedAt.Format(time.RFC3339Nano)
	}
	return rec
}

func (r record) state() (*timer.State, error) {
	work, err := time.ParseDuration(r.Work)
	if err != nil {
		return nil, fmt.Errorf("decode state: work: %w", err)
	}
	brk, err := time.ParseDuration(r.Break)
	if err != nil {
		return nil, fmt.Errorf("decode state: break: %w", err)
	}
	if r.Repetitions < 1 || work <= 0 || brk <= 0 {
		return nil, fmt.Errorf("decode state: invalid schedule %dp%sb%s", r.Repetitions, r.Work, r.Break)
	}
	totalPaused, err := time.ParseDuration(r.TotalPaused)
	if err != nil {
		return nil, fmt.Errorf("decode state: total_paused: %w", err)
	}
	startedAt, err := time.Parse(time.RFC3339Nano, r.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("decode state: started_at: %w", err)
	}

	st := &timer.State{
		ID:          r.ID,
		Schedule:    schedule.Schedule{Repetitions: r.Repetitions, Work: work, Break: brk},
		StartedAt:   startedAt,
		TotalPaused: totalPaused,
	}
	if r.PausedAt != "" {
		pausedAt, err := time.Parse(time.RFC3339Nano, r.PausedAt)
		if err != nil {
			return nil, fmt.Errorf("decode state: paused_at: %w", err)
		}
		st.PausedAt = &pausedAt
	}
	return st, nil
}
