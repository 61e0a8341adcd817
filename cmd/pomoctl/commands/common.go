package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pomoctl/internal/config"
	"git.home.luguber.info/inful/pomoctl/internal/history"
	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/store"
	"git.home.luguber.info/inful/pomoctl/internal/timer"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:""`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Start   StartCmd   `cmd:"" help:"Start a pomodoro"`
	Status  StatusCmd  `cmd:"" help:"Print the current pomodoro state"`
	Watch   WatchCmd   `cmd:"" help:"Continuously render the state to an overlay file"`
	Stop    StopCmd    `cmd:"" help:"Stop and archive the active pomodoro"`
	Pause   PauseCmd   `cmd:"" help:"Pause the pomodoro clock"`
	Unpause UnpauseCmd `cmd:"" help:"Resume a paused pomodoro clock"`
	Info    InfoCmd    `cmd:"" help:"Show schedule and bookkeeping details"`
	History HistoryCmd `cmd:"" help:"List archived runs"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// openStore resolves the configuration and the single-slot run store
// shared by every command.
func openStore(root *CLI) (*config.Config, *store.Store, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	st, err := store.New(cfg.StateDir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

// archiveRun records a stopped or replaced run. Archiving is best
// effort: failures are logged, never fatal to the command.
func archiveRun(cfg *config.Config, st *timer.State, endedAt time.Time) {
	if cfg.HistoryDisabled {
		return
	}
	arch, err := history.Open(cfg.HistoryPath)
	if err != nil {
		slog.Warn("history unavailable", logfields.Error(err))
		return
	}
	defer func() { _ = arch.Close() }()

	totalPaused := st.TotalPaused
	if st.PausedAt != nil {
		totalPaused += endedAt.Sub(*st.PausedAt)
	}
	run := history.Run{
		ID:          st.ID,
		Definition:  st.Schedule.Definition(),
		Repetitions: st.Schedule.Repetitions,
		Work:        st.Schedule.Work,
		Break:       st.Schedule.Break,
		StartedAt:   st.StartedAt,
		EndedAt:     endedAt,
		TotalPaused: totalPaused,
		Completed:   st.At(endedAt).Phase == timer.PhaseFinished,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := arch.Record(ctx, run); err != nil {
		slog.Warn("history record failed", logfields.RunID(st.ID), logfields.Error(err))
	}
}
