package config

import (
	"strings"
	"time"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

func validate(cfg *Config) error {
	validators := []func(*Config) error{
		validatePreview,
		validateVerify,
		validateNotify,
	}
	for _, v := range validators {
		if err := v(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validatePreview(cfg *Config) error {
	if cfg.Preview.Port < 1 || cfg.Preview.Port > 65535 {
		return errors.ValidationError("preview.port out of range").
			WithContext("port", cfg.Preview.Port).
			Build()
	}
	return nil
}

func validateVerify(cfg *Config) error {
	for i, key := range cfg.Verify.RequiredSearchKeys {
		if strings.TrimSpace(key) == "" {
			return errors.ValidationError("verify.required_search_keys contains an empty key").
				WithContext("index", i).
				Build()
		}
	}
	if s := cfg.Verify.Schedule; s != "" && !strings.HasPrefix(s, "@") && len(strings.Fields(s)) != 5 {
		return errors.ValidationError("verify.schedule must be a five-field cron expression or @descriptor").
			WithContext("schedule", s).
			Build()
	}
	return nil
}

func validateNotify(cfg *Config) error {
	if cfg.Notify.MaxRetries < 0 {
		return errors.ValidationError("notify.max_retries cannot be negative").
			WithContext("max_retries", cfg.Notify.MaxRetries).
			Build()
	}
	if d, err := time.ParseDuration(cfg.Notify.RetryDelay); err != nil || d <= 0 {
		return errors.ValidationError("notify.retry_delay must be a positive duration").
			WithContext("retry_delay", cfg.Notify.RetryDelay).
			Build()
	}
	if !cfg.Notify.Enabled() {
		return nil
	}
	if strings.ContainsAny(cfg.Notify.Subject, " \t*>") {
		return errors.ValidationError("notify.subject must be a literal NATS subject").
			WithContext("subject", cfg.Notify.Subject).
			Build()
	}
	return nil
}
