package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/pomoctl/internal/config"
	"git.home.luguber.info/inful/pomoctl/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Number of runs to list."`
}

func (c *HistoryCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.HistoryDisabled {
		return errors.New("pomoctl: history is disabled in configuration")
	}

	arch, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer func() { _ = arch.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runs, err := arch.Recent(ctx, c.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no archived runs")
		return nil
	}

	for _, run := range runs {
		outcome := "interrupted"
		if run.Completed {
			outcome = "completed"
		}
		fmt.Printf("%s  %-10s %-11s paused %s\n",
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			run.Definition,
			outcome,
			run.TotalPaused.Round(time.Second),
		)
	}
	return nil
}
