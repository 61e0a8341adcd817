package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrPastTarget reports a target end time at or before the start.
	ErrPastTarget = errors.New("pomoctl: target end time is not in the future")

	// ErrInfeasible reports that no repetition count fits the span.
	ErrInfeasible = errors.New("pomoctl: no schedule fits the target end time")
)

// minWork is the shortest work interval the solver will produce.
// Candidates below it are degenerate and excluded.
const minWork = time.Second

// maxCandidates caps the upward search leg.
const maxCandidates = 4096

// SolveUntil stretches or shrinks base so the run ends exactly at target.
// The break duration is kept as given. The repetition count is recomputed
// and the work duration moved as little as possible away from base.Work;
// when two counts deviate equally the larger count wins. base.Repetitions
// is ignored.
func SolveUntil(base Schedule, start, target time.Time) (Schedule, error) {
	total := target.Sub(start)
	if total <= 0 {
		return Schedule{}, fmt.Errorf("%w: %s", ErrPastTarget, target.Format("15:04"))
	}

	// One full cycle is work+break and the final repetition drops the
	// break, so r*(work+break) = total+break at the unadjusted work
	// duration. Rounding that r gives the first candidate.
	cycle := base.Work + base.Break
	first := int((total + base.Break + cycle/2) / cycle)
	if first < 1 {
		first = 1
	}

	var best Schedule
	bestDev := time.Duration(-1)

	// candidate computes the work duration that makes r repetitions fill
	// the span exactly and keeps the closest fit seen so far. It reports
	// false once r repetitions no longer fit, which bounds the upward
	// leg: the available work share only shrinks as r grows.
	candidate := func(r int) bool {
		avail := total - time.Duration(r-1)*base.Break
		if avail < time.Duration(r)*minWork {
			return false
		}
		work := avail / time.Duration(r)
		dev := work - base.Work
		if dev < 0 {
			dev = -dev
		}
		if bestDev < 0 || dev < bestDev || (dev == bestDev && r > best.Repetitions) {
			best = Schedule{Repetitions: r, Work: work, Break: base.Break}
			bestDev = dev
		}
		return true
	}

	for r := first; r < first+maxCandidates; r++ {
		if !candidate(r) {
			break
		}
	}
	for r := first - 1; r >= 1; r-- {
		candidate(r)
	}

	if bestDev < 0 {
		return Schedule{}, fmt.Errorf("%w: only %s available", ErrInfeasible, total)
	}
	return best, nil
}
