package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"git.home.luguber.info/inful/pomoctl/internal/render"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Width(12)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F")).
			Bold(true)
)

// InfoCmd implements the 'info' command: the configured schedule and the
// run's elapsed/paused bookkeeping in human-readable form.
type InfoCmd struct{}

func (c *InfoCmd) Run(_ *Global, root *CLI) error {
	_, st, err := openStore(root)
	if err != nil {
		return err
	}
	run, err := st.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	pausedFor := run.TotalPaused
	if run.PausedAt != nil {
		pausedFor += now.Sub(*run.PausedAt)
	}

	rows := []struct{ label, value string }{
		{"Definition", run.Schedule.Definition()},
		{"Repetitions", strconv.Itoa(run.Schedule.Repetitions)},
		{"Work", run.Schedule.Work.String()},
		{"Break", run.Schedule.Break.String()},
		{"Span", run.Schedule.Span().String()},
		{"Started", run.StartedAt.Local().Format("2006-01-02 15:04:05")},
		{"Ends at", run.EndsAt(now).Local().Format("15:04:05")},
		{"Elapsed", run.Elapsed(now).Round(time.Second).String()},
		{"Paused for", pausedFor.Round(time.Second).String()},
		{"Status", render.Status(run.At(now))},
	}
	for _, row := range rows {
		fmt.Println(labelStyle.Render(row.label) + " " + row.value)
	}
	if run.PausedAt != nil {
		fmt.Println(pausedStyle.Render("paused since " + run.PausedAt.Local().Format("15:04:05")))
	}
	return nil
}
