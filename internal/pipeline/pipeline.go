// Package pipeline wires configuration, content discovery, verification,
// history, notification and rendering into the operations the CLI and the
// preview server run.
package pipeline

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/content"
	"git.home.luguber.info/inful/feguide/internal/history"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/metrics"
	"git.home.luguber.info/inful/feguide/internal/notify"
	"git.home.luguber.info/inful/feguide/internal/render"
	"git.home.luguber.info/inful/feguide/internal/site"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

// Snapshot is the state produced by one verification run.
type Snapshot struct {
	Site    *site.Config
	Content *content.Index
	Report  *verify.Report
}

// Pipeline runs the feguide operations for one tool configuration.
type Pipeline struct {
	cfg       *config.Config
	recorder  metrics.Recorder
	history   *history.Store
	publisher notify.Publisher
}

type Option func(*Pipeline)

func WithRecorder(r metrics.Recorder) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithHistory stores every verification report in s.
func WithHistory(s *history.Store) Option {
	return func(p *Pipeline) { p.history = s }
}

// WithPublisher announces every verification report through pub.
func WithPublisher(pub notify.Publisher) Option {
	return func(p *Pipeline) {
		if pub != nil {
			p.publisher = pub
		}
	}
}

func New(cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg, recorder: metrics.NoopRecorder{}, publisher: notify.Noop{}}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Open builds a Pipeline with the history store and publisher cfg asks
// for. Options given by the caller take precedence. The returned close
// function releases what Open acquired.
func Open(cfg *config.Config, opts ...Option) (*Pipeline, func(), error) {
	var (
		closers []func()
		base    []Option
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.Verify.HistoryDB != "" {
		store, err := history.Open(cfg.Verify.HistoryDB)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() { _ = store.Close() })
		base = append(base, WithHistory(store))
	}
	pub, err := notify.New(cfg.Notify)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	closers = append(closers, pub.Close)
	base = append(base, WithPublisher(pub))

	return New(cfg, append(base, opts...)...), closeAll, nil
}

// Config returns the tool configuration.
func (p *Pipeline) Config() *config.Config { return p.cfg }

// History returns the history store, or nil when disabled.
func (p *Pipeline) History() *history.Store { return p.history }

// Site loads the site definition file, or the built-in guide when none is
// configured.
func (p *Pipeline) Site() (*site.Config, error) {
	if p.cfg.SiteFile == "" {
		return site.Guide(), nil
	}
	return config.LoadSite(p.cfg.SiteFile)
}

// Content discovers the content tree.
func (p *Pipeline) Content(ctx context.Context) (*content.Index, error) {
	return content.Discover(ctx, content.Options{
		Dir:            p.cfg.Content.Dir,
		Extensions:     p.cfg.Content.Extensions,
		Exclude:        p.cfg.Content.Exclude,
		GitLastUpdated: p.cfg.Content.GitLastUpdated,
	})
}

// Verify checks the site against the content tree, then records and
// announces the report. Storage and notification failures are logged and do
// not fail the run.
func (p *Pipeline) Verify(ctx context.Context) (*Snapshot, error) {
	s, err := p.Site()
	if err != nil {
		return nil, err
	}
	ix, err := p.Content(ctx)
	if err != nil {
		return nil, err
	}

	report, err := verify.New(verify.WithRecorder(p.recorder)).Run(ctx, verify.Input{
		Site:               s,
		Content:            ix,
		RequiredSearchKeys: p.cfg.Verify.RequiredSearchKeys,
		PartitionExempt:    p.cfg.Content.PartitionExempt,
		BuiltSiteDir:       p.cfg.Verify.BuiltSiteDir,
	})
	if err != nil {
		return nil, err
	}

	if p.history != nil {
		if err := p.history.Save(ctx, report); err != nil {
			slog.Warn("Failed to store verification report", logfields.RunID(report.RunID), logfields.Error(err))
		}
	}
	if err := p.publisher.Publish(ctx, report); err != nil {
		slog.Warn("Failed to publish verification report", logfields.RunID(report.RunID), logfields.Error(err))
	}
	return &Snapshot{Site: s, Content: ix, Report: report}, nil
}

// Render writes the site configuration to the configured output.
func (p *Pipeline) Render() (*render.Result, error) {
	s, err := p.Site()
	if err != nil {
		return nil, err
	}
	return render.NewWriter(p.recorder).Write(s, p.cfg.Output)
}
