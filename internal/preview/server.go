// Package preview serves the site configuration and the latest verification
// report over HTTP, re-verifying when content changes or on a schedule.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/pipeline"
)

// Server is the preview server. The snapshot is replaced wholesale after
// each run and never mutated.
type Server struct {
	pipeline *pipeline.Pipeline
	registry *prom.Registry

	mu      sync.RWMutex
	snap    *pipeline.Snapshot
	lastErr error

	refreshMu sync.Mutex
}

// New creates a server for p. A nil registry disables /metrics.
func New(p *pipeline.Pipeline, reg *prom.Registry) *Server {
	return &Server{pipeline: p, registry: reg}
}

// Refresh runs a verification and publishes its snapshot. Concurrent calls
// are serialized.
func (s *Server) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	snap, err := s.pipeline.Verify(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		return err
	}
	s.snap = snap
	return nil
}

// Snapshot returns the latest successful run and the error of the last
// attempt, if any.
func (s *Server) Snapshot() (*pipeline.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.lastErr
}

// Run verifies once, then serves on the configured port, watching content
// and the optional schedule until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	cfg := s.pipeline.Config()
	if err := s.Refresh(ctx); err != nil {
		slog.Error("Initial verification failed", logfields.Error(err))
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Preview.Port))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryNetwork, "failed to listen").
			WithContext("port", cfg.Preview.Port).
			Build()
	}
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	slog.Info("Preview server listening", logfields.Port(cfg.Preview.Port),
		slog.String("url", fmt.Sprintf("http://localhost:%d", cfg.Preview.Port)))

	trigger, stopDebounce := s.debouncedRefresh(ctx, 300*time.Millisecond)
	defer stopDebounce()

	w, err := newWatcher(cfg.Content.Dir, cfg.SiteFile, trigger)
	if err != nil {
		slog.Warn("File watching disabled", logfields.Error(err))
	} else {
		go w.run(ctx)
		defer w.close()
	}

	if cfg.Verify.Schedule != "" {
		sched, err := newScheduler(cfg.Verify.Schedule, func() {
			if err := s.Refresh(ctx); err != nil {
				slog.Warn("Scheduled verification failed", logfields.Error(err))
			}
		})
		if err != nil {
			_ = httpServer.Close()
			return err
		}
		sched.start()
		defer sched.stop()
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return ferrors.WrapError(err, ferrors.CategoryNetwork, "preview server failed").Build()
		}
	}

	slog.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	return nil
}

// debouncedRefresh returns a trigger that refreshes once the calls have
// been quiet for delay. stop cancels a pending refresh and waits for one
// already running, so callers may close the history store after it.
func (s *Server) debouncedRefresh(ctx context.Context, delay time.Duration) (trigger func(), stop func()) {
	var (
		mu      sync.Mutex
		timer   *time.Timer
		stopped bool
		running sync.WaitGroup
	)
	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return
		}
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			mu.Lock()
			if stopped || ctx.Err() != nil {
				mu.Unlock()
				return
			}
			running.Add(1)
			mu.Unlock()
			defer running.Done()

			slog.Info("Change detected; re-verifying")
			if err := s.Refresh(ctx); err != nil {
				slog.Warn("Re-verification failed", logfields.Error(err))
			}
		})
	}
	stop = func() {
		mu.Lock()
		stopped = true
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		running.Wait()
	}
	return trigger, stop
}
