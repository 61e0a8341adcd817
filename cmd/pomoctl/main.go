package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pomoctl/cmd/pomoctl/commands"
	"git.home.luguber.info/inful/pomoctl/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("pomoctl"),
		kong.Description("File-backed pomodoro timer for status bars and shell overlays."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("pomoctl %s (built %s, commit %s)",
				version.Version, version.BuildTime, version.GitCommit),
		},
	)
	ctx.FatalIfErrorf(ctx.Run(&commands.Global{Logger: slog.Default()}))
}
