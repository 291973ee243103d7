package commands

import (
	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format string `short:"f" help:"Override output format (vitepress or hugo)" placeholder:"FORMAT"`
	Output string `short:"o" help:"Override output directory" placeholder:"DIR"`
	Clean  bool   `help:"Remove previously rendered files first"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if r.Format != "" {
		format, err := config.ParseOutputFormat(r.Format)
		if err != nil {
			return err
		}
		if cfg.Output.Directory == config.DefaultOutputDirectory(cfg.Output.Format) {
			cfg.Output.Directory = config.DefaultOutputDirectory(format)
		}
		cfg.Output.Format = format
	}
	if r.Output != "" {
		cfg.Output.Directory = r.Output
	}
	if r.Clean {
		cfg.Output.Clean = true
	}

	res, err := pipeline.New(cfg).Render()
	if err != nil {
		return err
	}
	g.printf("Rendered %s configuration to %s\n", res.Format, res.Path)
	return nil
}
