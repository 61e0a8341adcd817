// Package schedule models the shape of a pomodoro run: how many work
// repetitions it contains and how long the work and break intervals last.
//
// A schedule is written compactly as [reps][p<work>][b<break>], for
// example "2p30b5" for two repetitions of 30 minutes work separated by a
// 5 minute break. Omitted segments fall back to the default "4p45b10".
package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Segment values filling whatever a definition omits.
const (
	DefaultRepetitions = 4
	DefaultWork        = 45 * time.Minute
	DefaultBreak       = 10 * time.Minute
)

// Schedule is the immutable shape of one pomodoro run. Repetitions is at
// least 1 and both durations are positive. The final repetition carries
// no trailing break.
type Schedule struct {
	Repetitions int
	Work        time.Duration
	Break       time.Duration
}

// Default returns the schedule encoded by "4p45b10".
func Default() Schedule {
	return Schedule{Repetitions: DefaultRepetitions, Work: DefaultWork, Break: DefaultBreak}
}

// Span is the total wall-clock length of an uninterrupted run: every work
// interval plus the breaks between them.
func (s Schedule) Span() time.Duration {
	return time.Duration(s.Repetitions)*s.Work + time.Duration(s.Repetitions-1)*s.Break
}

// Definition renders the schedule in its compact form, e.g. "4p45b10".
// Parsing the result yields an equal schedule.
func (s Schedule) Definition() string {
	return fmt.Sprintf("%dp%sb%s", s.Repetitions, segment(s.Work), segment(s.Break))
}

// segment renders one duration token. Whole minutes use the bare default
// unit, anything finer is expressed in seconds. Sub-second precision has
// no token form and is rounded for display.
func segment(d time.Duration) string {
	if d%time.Minute == 0 {
		return strconv.FormatInt(int64(d/time.Minute), 10)
	}
	return strconv.FormatInt(int64(d.Round(time.Second)/time.Second), 10) + "s"
}
