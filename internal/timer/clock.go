package timer

import "time"

// Phase is where the clock sits within a run.
type Phase string

const (
	PhaseWork     Phase = "work"
	PhaseBreak    Phase = "break"
	PhaseFinished Phase = "done"
)

// Snapshot is a projection of a run onto one instant. It is computed
// fresh on every query and never persisted.
type Snapshot struct {
	Phase      Phase
	Next       Phase
	Repetition int // 1-based, capped at Total
	Total      int
	Remaining  time.Duration
	Paused     bool
}

// At locates now within the run's interval sequence. Repetition i covers
// [offset, offset+work) for its work phase and the following break
// interval after that, except the final repetition which has no break.
// Past the end the phase is done with zero remaining. At never mutates
// the state, so it is safe for repeated polling.
func (s *State) At(now time.Time) Snapshot {
	elapsed := s.Elapsed(now)
	sched := s.Schedule

	offset := time.Duration(0)
	for i := 1; i <= sched.Repetitions; i++ {
		if elapsed < offset+sched.Work {
			next := PhaseBreak
			if i == sched.Repetitions {
				next = PhaseFinished
			}
			return Snapshot{
				Phase:      PhaseWork,
				Next:       next,
				Repetition: i,
				Total:      sched.Repetitions,
				Remaining:  offset + sched.Work - elapsed,
				Paused:     s.Paused(),
			}
		}
		offset += sched.Work

		if i == sched.Repetitions {
			break
		}
		if elapsed < offset+sched.Break {
			return Snapshot{
				Phase:      PhaseBreak,
				Next:       PhaseWork,
				Repetition: i,
				Total:      sched.Repetitions,
				Remaining:  offset + sched.Break - elapsed,
				Paused:     s.Paused(),
			}
		}
		offset += sched.Break
	}

	return Snapshot{
		Phase:      PhaseFinished,
		Next:       PhaseFinished,
		Repetition: sched.Repetitions,
		Total:      sched.Repetitions,
		Remaining:  0,
		Paused:     s.Paused(),
	}
}
