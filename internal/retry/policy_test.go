package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/config"
	ferrors "git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

func TestNewPolicy_Overrides(t *testing.T) {
	p := NewPolicy(config.BackoffFixed, 5*time.Second, 2*time.Second, 5)
	assert.Equal(t, 2*time.Second, p.Initial, "initial clamped to max")
	assert.Equal(t, 2*time.Second, p.Max)
	assert.Equal(t, config.BackoffFixed, p.Mode)
	assert.Equal(t, 5, p.MaxRetries)

	d := NewPolicy("bogus", 0, 0, -1)
	assert.Equal(t, DefaultPolicy(), d)
}

func TestPolicy_Delay(t *testing.T) {
	ms := time.Millisecond
	fixed := NewPolicy(config.BackoffFixed, 100*ms, 500*ms, 3)
	linear := NewPolicy(config.BackoffLinear, 100*ms, 250*ms, 5)
	exp := NewPolicy(config.BackoffExponential, 100*ms, 500*ms, 5)

	tests := []struct {
		p       Policy
		attempt int
		want    time.Duration
	}{
		{fixed, 0, 0},
		{fixed, 3, 100 * ms},
		{linear, 1, 100 * ms},
		{linear, 2, 200 * ms},
		{linear, 3, 250 * ms},
		{exp, 1, 100 * ms},
		{exp, 2, 200 * ms},
		{exp, 3, 400 * ms},
		{exp, 4, 500 * ms},
		{exp, 64, 500 * ms},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.Delay(tt.attempt), "%s attempt %d", tt.p.Mode, tt.attempt)
	}
}

func TestFromNotify(t *testing.T) {
	p := FromNotify(config.NotifyConfig{Backoff: config.BackoffExponential, RetryDelay: "1s", MaxRetries: 4})
	assert.Equal(t, config.BackoffExponential, p.Mode)
	assert.Equal(t, time.Second, p.Initial)
	assert.Equal(t, 4, p.MaxRetries)
}

func TestPolicy_Do(t *testing.T) {
	p := NewPolicy(config.BackoffFixed, time.Millisecond, time.Millisecond, 2)

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = p.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("down")
	})
	require.EqualError(t, err, "down")
	assert.Equal(t, 3, calls)
}

func TestPolicy_DoStopsOnFatal(t *testing.T) {
	p := NewPolicy(config.BackoffFixed, time.Millisecond, time.Millisecond, 5)
	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return ferrors.InternalError("broken").Build()
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicy_DoHonorsContext(t *testing.T) {
	p := NewPolicy(config.BackoffFixed, time.Hour, time.Hour, 3)
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := p.Do(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("down")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
