package config

import (
	"time"

	"git.home.luguber.info/inful/feguide/internal/foundation/normalization"
)

// Enabled reports whether a NATS server is configured.
func (n NotifyConfig) Enabled() bool { return n.NATSURL != "" }

// InitialDelay parses RetryDelay; it is validated on load.
func (n NotifyConfig) InitialDelay() time.Duration {
	d, err := time.ParseDuration(n.RetryDelay)
	if err != nil {
		return 0
	}
	return d
}

// BackoffMode selects how the delay grows between publish retries.
type BackoffMode string

const (
	BackoffFixed       BackoffMode = "fixed"
	BackoffLinear      BackoffMode = "linear"
	BackoffExponential BackoffMode = "exponential"
)

var backoffNormalizer = normalization.NewNormalizer(map[string]BackoffMode{
	"fixed":       BackoffFixed,
	"linear":      BackoffLinear,
	"exponential": BackoffExponential,
	"exp":         BackoffExponential,
}, BackoffLinear)

func NormalizeBackoffMode(raw string) BackoffMode {
	return backoffNormalizer.Normalize(raw)
}
