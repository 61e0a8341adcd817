package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/pomoctl/internal/logfields"
	"git.home.luguber.info/inful/pomoctl/internal/overlay"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Path string `arg:"" optional:"" help:"Overlay file to rewrite every interval. Falls back to the configured path."`
}

func (c *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, st, err := openStore(root)
	if err != nil {
		return err
	}

	path := c.Path
	if path == "" {
		path = cfg.WatchPath
	}

	// Signal-based context for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Debug("watching pomodoro state", logfields.Path(path))
	w := overlay.New(st, path, cfg.WatchInterval())
	w.Echo = os.Stdout
	err = w.Run(ctx)
	fmt.Println()
	return err
}
