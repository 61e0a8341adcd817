package commands

import (
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/render"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

// PauseCmd implements the 'pause' command.
type PauseCmd struct{}

func (c *PauseCmd) Run(_ *Global, root *CLI) error {
	return mutatePause(root, "pause", (*timer.State).Pause)
}

// UnpauseCmd implements the 'unpause' command.
type UnpauseCmd struct{}

func (c *UnpauseCmd) Run(_ *Global, root *CLI) error {
	return mutatePause(root, "unpause", (*timer.State).Resume)
}

// mutatePause is the shared load-transition-update cycle behind both
// pause commands. The store write is atomic, so a concurrent status
// poll sees either the old record or the new one, never a torn file.
func mutatePause(root *CLI, name string, transition func(*timer.State, time.Time) error) error {
	_, st, err := openStore(root)
	if err != nil {
		return err
	}
	run, err := st.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	if err := transition(run, now); err != nil {
		return err
	}
	if err := st.Update(run); err != nil {
		return err
	}

	slog.Debug("pause state changed", logfields.Command(name), logfields.RunID(run.ID))
	fmt.Println(render.Status(run.At(now)))
	return nil
}
