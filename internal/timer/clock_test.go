package timer

import (
	"testing"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/schedule"
)

func twoByTen() *State {
	sched := schedule.Schedule{Repetitions: 2, Work: 10 * time.Minute, Break: 5 * time.Minute}
	return New(sched, testStart)
}

func TestAtWalksIntervals(t *testing.T) {
	st := twoByTen()

	tests := []struct {
		name       string
		offset     time.Duration
		phase      Phase
		next       Phase
		repetition int
		remaining  time.Duration
	}{
		{"first work", 5 * time.Minute, PhaseWork, PhaseBreak, 1, 5 * time.Minute},
		{"first break", 12 * time.Minute, PhaseBreak, PhaseWork, 1, 3 * time.Minute},
		{"final work", 16 * time.Minute, PhaseWork, PhaseFinished, 2, 9 * time.Minute},
		{"past the end", 30 * time.Minute, PhaseFinished, PhaseFinished, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := st.At(testStart.Add(tt.offset))
			if snap.Phase != tt.phase {
				t.Errorf("Phase = %s, want %s", snap.Phase, tt.phase)
			}
			if snap.Next != tt.next {
				t.Errorf("Next = %s, want %s", snap.Next, tt.next)
			}
			if snap.Repetition != tt.repetition {
				t.Errorf("Repetition = %d, want %d", snap.Repetition, tt.repetition)
			}
			if snap.Remaining != tt.remaining {
				t.Errorf("Remaining = %s, want %s", snap.Remaining, tt.remaining)
			}
			if snap.Total != 2 {
				t.Errorf("Total = %d, want 2", snap.Total)
			}
			if snap.Paused {
				t.Error("Paused = true for a running clock")
			}
		})
	}
}

func TestAtBoundaries(t *testing.T) {
	st := twoByTen()

	// Interval starts are inclusive, ends exclusive.
	atWorkEnd := st.At(testStart.Add(10 * time.Minute))
	if atWorkEnd.Phase != PhaseBreak || atWorkEnd.Remaining != 5*time.Minute {
		t.Errorf("at work end: %+v, want break with 5m remaining", atWorkEnd)
	}

	atSpanEnd := st.At(testStart.Add(25 * time.Minute))
	if atSpanEnd.Phase != PhaseFinished || atSpanEnd.Remaining != 0 {
		t.Errorf("at span end: %+v, want finished", atSpanEnd)
	}

	beforeStart := st.At(testStart.Add(-time.Minute))
	if beforeStart.Phase != PhaseWork || beforeStart.Remaining != 10*time.Minute {
		t.Errorf("before start: %+v, want first work interval untouched", beforeStart)
	}
}

func TestAtWhilePausedFreezesClock(t *testing.T) {
	st := twoByTen()
	if err := st.Pause(testStart.Add(4 * time.Minute)); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	for _, offset := range []time.Duration{4 * time.Minute, 10 * time.Minute, 2 * time.Hour} {
		snap := st.At(testStart.Add(offset))
		if !snap.Paused {
			t.Errorf("Paused = false at +%s", offset)
		}
		if snap.Phase != PhaseWork || snap.Remaining != 6*time.Minute {
			t.Errorf("paused clock moved at +%s: %+v", offset, snap)
		}
	}
}

func TestPauseShiftsEveryBoundary(t *testing.T) {
	st := twoByTen()
	ref := twoByTen()

	pausedFor := 7 * time.Minute
	if err := st.Pause(testStart.Add(3 * time.Minute)); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if err := st.Resume(testStart.Add(3*time.Minute + pausedFor)); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	for _, offset := range []time.Duration{4 * time.Minute, 11 * time.Minute, 24 * time.Minute, 26 * time.Minute} {
		plain := ref.At(testStart.Add(offset))
		shifted := st.At(testStart.Add(offset + pausedFor))
		if shifted != plain {
			t.Errorf("at +%s: shifted run = %+v, want %+v", offset, shifted, plain)
		}
	}
}
