package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/feguide/cmd/feguide/commands"
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := commands.NewGlobal()
	parser := kong.Parse(cli,
		kong.Name("feguide"),
		kong.Description("Configure, verify and preview the frontend interview study guide."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	if err := parser.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
	os.Exit(global.ExitCode())
}
