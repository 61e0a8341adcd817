package commands

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/render"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

// StopCmd implements the 'stop' command.
type StopCmd struct{}

func (c *StopCmd) Run(_ *Global, root *CLI) error {
	cfg, st, err := openStore(root)
	if err != nil {
		return err
	}

	run, err := st.Delete()
	if err != nil {
		return err
	}

	now := time.Now()
	archiveRun(cfg, run, now)
	slog.Debug("pomodoro stopped", logfields.RunID(run.ID))

	if run.At(now).Phase == timer.PhaseFinished {
		fmt.Printf("stopped %s (completed)\n", run.Schedule.Definition())
	} else {
		fmt.Printf("stopped %s after %s\n", run.Schedule.Definition(), render.Clock(run.Elapsed(now)))
	}
	return nil
}
