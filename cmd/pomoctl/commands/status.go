package commands

import (
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/render"
	"git.home.luguber.info/inful/pomoctl/internal/store"
)

// StatusCmd implements the 'status' command. An empty slot is not an
// error here: status feeds status bars, which poll whether or not a
// pomodoro is running.
type StatusCmd struct{}

func (c *StatusCmd) Run(_ *Global, root *CLI) error {
	_, st, err := openStore(root)
	if err != nil {
		return err
	}

	run, err := st.Load()
	if errors.Is(err, store.ErrNotRunning) {
		fmt.Println(render.Idle())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(render.Status(run.At(time.Now())))
	return nil
}
