package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/feguide/internal/pipeline"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

// VerifyCmd implements the 'verify' command. Exit status is 0 when clean,
// 1 when only warnings were found (unless --quiet) and 2 on errors.
type VerifyCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	Built  string `help:"Also check links in this built site directory" placeholder:"DIR"`
}

func (v *VerifyCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if v.Built != "" {
		cfg.Verify.BuiltSiteDir = v.Built
	}

	p, closeFn, err := pipeline.Open(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	snap, err := p.Verify(ctx)
	if err != nil {
		return err
	}
	if err := verify.NewFormatter(v.Format, v.Quiet).Format(g.Out, snap.Report); err != nil {
		return err
	}
	g.SetExitCode(exitCodeFor(snap.Report, v.Quiet))
	return nil
}

func exitCodeFor(r *verify.Report, quiet bool) int {
	switch {
	case r.HasErrors():
		return 2
	case r.HasWarnings() && !quiet:
		return 1
	default:
		return 0
	}
}
