// Package render formats clock snapshots as single-line strings for
// standard output and overlay files. Output is deterministic and plain
// text so status bars can consume it verbatim.
package render

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

const (
	doneLine = "pomodoro done"
	idleLine = "no pomodoro running"
)

// Status renders one line for a snapshot, e.g.
//
//	work 27:30 (next: break) 1/4
//
// with a trailing [paused] marker while paused. A finished run renders a
// fixed completion message.
func Status(snap timer.Snapshot) string {
	if snap.Phase == timer.PhaseFinished {
		return doneLine
	}
	line := fmt.Sprintf("%s %s (next: %s) %d/%d",
		snap.Phase, Clock(snap.Remaining), snap.Next, snap.Repetition, snap.Total)
	if snap.Paused {
		line += " [paused]"
	}
	return line
}

// File renders the overlay-file form of a snapshot: Status plus a
// trailing newline.
func File(snap timer.Snapshot) string {
	return Status(snap) + "\n"
}

// Idle is the line shown when no run is active.
func Idle() string { return idleLine }

// IdleFile is the overlay-file form of Idle.
func IdleFile() string { return idleLine + "\n" }

// Clock formats a countdown as MM:SS, growing to H:MM:SS from an hour
// up. Durations are rounded to whole seconds and negative values clamp
// to zero.
func Clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
