package preview

import (
	"log/slog"

	"github.com/go-co-op/gocron/v2"

	ferrors "git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
)

// scheduler re-runs verification on a cron expression or "@every" descriptor.
type scheduler struct {
	s    gocron.Scheduler
	expr string
}

func newScheduler(expr string, task func()) (*scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create scheduler").Build()
	}
	_, err = s.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(task),
		gocron.WithName("verify"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid verification schedule").
			WithContext("schedule", expr).
			Build()
	}
	return &scheduler{s: s, expr: expr}, nil
}

func (s *scheduler) start() {
	s.s.Start()
	slog.Info("Scheduled verification enabled", logfields.Schedule(s.expr))
}

func (s *scheduler) stop() {
	if err := s.s.Shutdown(); err != nil {
		slog.Warn("Scheduler shutdown error", logfields.Error(err))
	}
}
