// Package commands holds the feguide command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/feguide/internal/config"
)

// Global carries the process-wide output and exit status shared by commands.
type Global struct {
	Out  io.Writer
	exit int
}

func NewGlobal() *Global {
	return &Global{Out: os.Stdout}
}

// SetExitCode records a non-error exit status, such as verification
// warnings. The highest code wins.
func (g *Global) SetExitCode(code int) {
	if code > g.exit {
		g.exit = code
	}
}

func (g *Global) ExitCode() int { return g.exit }

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.Out, format, args...)
}

// CLI definition and global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: feguide.yaml)" placeholder:"PATH"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Render  RenderCmd  `cmd:"" help:"Render the site configuration for the static site tool"`
	Verify  VerifyCmd  `cmd:"" help:"Check navigation, sidebar, dictionary and search against the content"`
	Sidebar SidebarCmd `cmd:"" help:"Show the sidebar section and active link for a page"`
	Serve   ServeCmd   `cmd:"" help:"Serve the configuration API and re-verify on changes"`
	History HistoryCmd `cmd:"" help:"List stored verification runs"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// configPath is the file to load and whether it must exist. Only an
// explicit --config is required.
func (c *CLI) configPath() (string, bool) {
	if c.Config == "" {
		return config.DefaultPath, false
	}
	return c.Config, true
}

// LoadConfig loads the tool configuration and applies its logging settings.
func (c *CLI) LoadConfig() (*config.Config, error) {
	path, required := c.configPath()
	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	c.configureLogging(cfg.Logging)
	return cfg, nil
}

func (c *CLI) configureLogging(lc config.LoggingConfig) {
	level := lc.Level.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
