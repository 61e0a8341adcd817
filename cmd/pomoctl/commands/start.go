package commands

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/render"
	"git.home.luguber.info/inful/pomoctl/internal/schedule"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

// StartCmd implements the 'start' command.
type StartCmd struct {
	Definition string `arg:"" optional:"" help:"Compact schedule definition, e.g. 2p30b5. Falls back to the configured default."`
	Until      string `help:"Finish exactly at this wall-clock time (HH:MM); repetitions and work duration are adjusted to fit."`
	Replace    bool   `help:"Archive and replace an already active pomodoro instead of failing."`
}

func (s *StartCmd) Run(_ *Global, root *CLI) error {
	cfg, st, err := openStore(root)
	if err != nil {
		return err
	}

	definition := s.Definition
	if definition == "" {
		definition = cfg.Definition
	}
	sched, err := schedule.Parse(definition)
	if err != nil {
		return err
	}

	now := time.Now()
	if s.Until != "" {
		target, err := clockToday(s.Until, now)
		if err != nil {
			return err
		}
		sched, err = schedule.SolveUntil(sched, now, target)
		if err != nil {
			return err
		}
	}

	run := timer.New(sched, now)
	if s.Replace {
		prior, err := st.Replace(run)
		if err != nil {
			return err
		}
		if prior != nil {
			archiveRun(cfg, prior, now)
		}
	} else if err := st.Create(run); err != nil {
		return err
	}

	slog.Debug("pomodoro started", logfields.RunID(run.ID), logfields.Definition(sched.Definition()))
	fmt.Println(render.Status(run.At(now)))
	return nil
}

// clockToday resolves an HH:MM wall-clock string on now's date in local
// time. A time that already passed today is a past target; there is no
// rollover to tomorrow.
func clockToday(value string, now time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("pomoctl: invalid --until time %q, want HH:MM", value)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}
