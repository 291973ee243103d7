package commands

import (
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
	"git.home.luguber.info/inful/feguide/internal/site"
)

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Path string `arg:"" help:"Page path, e.g. /base/es6/variables-and-scope"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	guide, err := pipeline.New(cfg).Site()
	if err != nil {
		return err
	}

	sec, ok := guide.SectionFor(s.Path)
	if !ok {
		return errors.NotFoundError("no sidebar section covers this path").
			WithContext("path", s.Path).
			Build()
	}
	route := site.NormalizePath(s.Path)
	active, hasActive := guide.ActiveLink(route)

	g.printf("Path:    %s\n", route)
	g.printf("Section: %s", sec.Prefix)
	if sec.Heading != "" {
		g.printf(" (%s)", sec.Heading)
	}
	g.printf("\n")
	if nav, ok := guide.ActiveNav(route); ok {
		g.printf("Nav:     %s\n", nav.Text)
	}
	g.printf("\n")
	for gi, grp := range sec.Groups {
		g.printf("%s\n", grp.Text)
		for li, l := range grp.Items {
			marker := " "
			if hasActive && active.GroupIndex == gi && active.LinkIndex == li {
				marker = ">"
			}
			g.printf(" %s %s  %s\n", marker, l.Text, l.Link)
		}
	}
	return nil
}
