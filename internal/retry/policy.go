// Package retry holds the backoff policy used for transient delivery
// failures.
package retry

import (
	"context"
	"time"

	"git.home.luguber.info/inful/feguide/internal/config"
	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

// Policy encapsulates retry/backoff settings. It is immutable after
// construction.
type Policy struct {
	Mode       config.BackoffMode
	Initial    time.Duration // base delay
	Max        time.Duration // cap for growth
	MaxRetries int           // retries after the first failure
}

// DefaultPolicy is linear, 200ms initial, 5s cap, 2 retries.
func DefaultPolicy() Policy {
	return Policy{Mode: config.BackoffLinear, Initial: 200 * time.Millisecond, Max: 5 * time.Second, MaxRetries: 2}
}

// FromNotify builds the policy for report publishing.
func FromNotify(n config.NotifyConfig) Policy {
	return NewPolicy(n.Backoff, n.InitialDelay(), 0, n.MaxRetries)
}

// NewPolicy fills zero or unknown values from DefaultPolicy.
func NewPolicy(mode config.BackoffMode, initial, maxDelay time.Duration, maxRetries int) Policy {
	p := DefaultPolicy()
	if maxRetries >= 0 {
		p.MaxRetries = maxRetries
	}
	if initial > 0 {
		p.Initial = initial
	}
	if maxDelay > 0 {
		p.Max = maxDelay
	}
	switch mode {
	case config.BackoffFixed, config.BackoffLinear, config.BackoffExponential:
		p.Mode = mode
	}
	if p.Initial > p.Max {
		p.Initial = p.Max
	}
	return p
}

// Delay returns the wait before retry n (first retry is 1).
func (p Policy) Delay(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	var d time.Duration
	switch p.Mode {
	case config.BackoffFixed:
		return p.Initial
	case config.BackoffExponential:
		if n > 30 {
			return p.Max
		}
		d = p.Initial * (1 << (n - 1))
	default:
		d = time.Duration(n) * p.Initial
	}
	if d > p.Max {
		return p.Max
	}
	return d
}

// Do calls fn until it succeeds, the retries are used up, or ctx ends.
// Errors classified as fatal are not retried.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt >= p.MaxRetries || !retryable(err) {
			return err
		}
		timer := time.NewTimer(p.Delay(attempt + 1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

func retryable(err error) bool {
	if ce, ok := errors.AsClassified(err); ok {
		return ce.Severity() != errors.SeverityFatal
	}
	return true
}
