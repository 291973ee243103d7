// Package notify publishes verification summaries to NATS subscribers.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/retry"
	"git.home.luguber.info/inful/feguide/internal/verify"
)

// Publisher delivers report summaries.
type Publisher interface {
	Publish(ctx context.Context, r *verify.Report) error
	Close()
}

// Noop is the Publisher used when notification is disabled.
type Noop struct{}

func (Noop) Publish(context.Context, *verify.Report) error { return nil }
func (Noop) Close() {}

// conn is the part of *nats.Conn the publisher needs.
type conn interface {
	Publish(subj string, data []byte) error
	FlushWithContext(ctx context.Context) error
	Close()
}

// NATSPublisher publishes summaries as JSON on a core NATS subject.
type NATSPublisher struct {
	conn    conn
	subject string
	policy  retry.Policy
}

// New returns a NATS publisher for cfg, or Noop when no server is set.
func New(cfg config.NotifyConfig) (Publisher, error) {
	if !cfg.Enabled() {
		return Noop{}, nil
	}
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name("feguide"),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNetwork, "failed to connect to NATS").
			WithContext("url", cfg.NATSURL).
			Build()
	}
	slog.Info("NATS notification enabled", logfields.Subject(cfg.Subject))
	return &NATSPublisher{conn: nc, subject: cfg.Subject, policy: retry.FromNotify(cfg)}, nil
}

// Publish sends the report summary and waits for the server to accept it,
// retrying transient failures per the configured backoff.
func (p *NATSPublisher) Publish(ctx context.Context, r *verify.Report) error {
	data, err := json.Marshal(r.Summary())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal summary").Fatal().Build()
	}
	attempt := 0
	err = p.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			slog.Debug("Retrying summary publish", logfields.Subject(p.subject), slog.Int("attempt", attempt))
		}
		return p.send(ctx, data)
	})
	if err != nil {
		return err
	}
	slog.Debug("Published verification summary", logfields.Subject(p.subject), logfields.RunID(r.RunID))
	return nil
}

func (p *NATSPublisher) send(ctx context.Context, data []byte) error {
	if err := p.conn.Publish(p.subject, data); err != nil {
		return errors.WrapError(err, errors.CategoryNetwork, "failed to publish summary").
			WithContext("subject", p.subject).
			Build()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errors.WrapError(err, errors.CategoryNetwork, "failed to flush NATS connection").
			WithContext("subject", p.subject).
			Build()
	}
	return nil
}

func (p *NATSPublisher) Close() {
	p.conn.Close()
}
