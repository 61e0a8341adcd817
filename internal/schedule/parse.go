package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidFormat reports a definition that does not match the
	// [reps][p<work>][b<break>] grammar.
	ErrInvalidFormat = errors.New("pomoctl: invalid schedule definition")

	// ErrZeroDuration reports a segment explicitly set to zero where a
	// positive value is required.
	ErrZeroDuration = errors.New("pomoctl: schedule segment must be positive")
)

// Segment order is fixed: repetitions, then work, then break. Duration
// tokens default to minutes and accept an h, m or s suffix.
var definitionRe = regexp.MustCompile(`^(\d+)?(?:p(\d+)([hms])?)?(?:b(\d+)([hms])?)?$`)

// Parse turns a compact definition such as "2p30b5" into a Schedule.
// Every segment is optional, omitted ones keep their defaults, and the
// empty string yields Default(). Parse has no side effects.
func Parse(definition string) (Schedule, error) {
	m := definitionRe.FindStringSubmatch(strings.TrimSpace(definition))
	if m == nil {
		return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidFormat, definition)
	}

	sched := Default()
	if m[1] != "" {
		reps, err := strconv.Atoi(m[1])
		if err != nil {
			return Schedule{}, fmt.Errorf("%w: repetitions in %q", ErrInvalidFormat, definition)
		}
		if reps == 0 {
			return Schedule{}, fmt.Errorf("%w: repetitions in %q", ErrZeroDuration, definition)
		}
		sched.Repetitions = reps
	}
	if m[2] != "" {
		work, err := parseSegment("work", m[2], m[3], definition)
		if err != nil {
			return Schedule{}, err
		}
		sched.Work = work
	}
	if m[4] != "" {
		brk, err := parseSegment("break", m[4], m[5], definition)
		if err != nil {
			return Schedule{}, err
		}
		sched.Break = brk
	}
	return sched, nil
}

func parseSegment(label, digits, suffix, definition string) (time.Duration, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s segment in %q", ErrInvalidFormat, label, definition)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s segment in %q", ErrZeroDuration, label, definition)
	}
	unit := time.Minute
	switch suffix {
	case "s":
		unit = time.Second
	case "h":
		unit = time.Hour
	}
	return time.Duration(n) * unit, nil
}
