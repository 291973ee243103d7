package commands

import (
	"context"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/feguide/internal/metrics"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
	"git.home.luguber.info/inful/feguide/internal/preview"
)

// ServeCmd starts the preview server.
type ServeCmd struct {
	Port     int    `short:"p" help:"Override preview.port"`
	Schedule string `help:"Override verify.schedule (cron expression or @every)"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	if s.Port != 0 {
		cfg.Preview.Port = s.Port
	}
	if s.Schedule != "" {
		cfg.Verify.Schedule = s.Schedule
	}

	var (
		reg  *prom.Registry
		opts []pipeline.Option
	)
	if cfg.Preview.Metrics {
		reg = prom.NewRegistry()
		opts = append(opts, pipeline.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}
	p, closeFn, err := pipeline.Open(cfg, opts...)
	if err != nil {
		return err
	}
	defer closeFn()

	return preview.New(p, reg).Run(ctx)
}
