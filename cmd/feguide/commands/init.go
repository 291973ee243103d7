package commands

import (
	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/site"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool   `help:"Overwrite existing files"`
	Site  string `help:"Also export the built-in guide as an editable site file at this path" placeholder:"PATH"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path, _ := root.configPath()

	var opts []func(*config.Config)
	if i.Site != "" {
		if err := config.WriteSite(i.Site, site.Guide(), i.Force); err != nil {
			return err
		}
		g.printf("Wrote site definition to %s\n", i.Site)
		opts = append(opts, func(c *config.Config) { c.SiteFile = i.Site })
	}

	if err := config.Init(path, i.Force, opts...); err != nil {
		return err
	}
	g.printf("Wrote configuration to %s\n", path)
	return nil
}
