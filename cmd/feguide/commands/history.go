package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/history"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	Limit int    `short:"n" default:"20" help:"Number of runs to list"`
	RunID string `name:"run" help:"Show the issues of one run" placeholder:"RUN_ID"`
}

func (h *HistoryCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.Verify.HistoryDB == "" {
		return errors.ConfigError("verification history is disabled (set verify.history_db)").Build()
	}
	store, err := history.Open(cfg.Verify.HistoryDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	if h.RunID != "" {
		return h.showRun(ctx, g, store)
	}

	runs, err := store.Recent(ctx, h.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		g.printf("No verification runs recorded\n")
		return nil
	}
	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "RUN\tSTARTED\tPAGES\tOUTCOME\tERRORS\tWARNINGS\tDURATION")
	for _, r := range runs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\t%s\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Pages, r.Outcome,
			r.Errors, r.Warnings, r.Duration.Round(time.Millisecond))
	}
	return tw.Flush()
}

func (h *HistoryCmd) showRun(ctx context.Context, g *Global, store *history.Store) error {
	issues, err := store.Issues(ctx, h.RunID)
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		g.printf("Run %s has no issues\n", h.RunID)
		return nil
	}
	for _, is := range issues {
		g.printf("%-7s %-24s %s: %s\n", is.Severity, is.Rule, is.Route, is.Message)
	}
	return nil
}
