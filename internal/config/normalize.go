package config

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
	"git.home.luguber.info/inful/feguide/internal/site"
)

// normalize case-folds enumerations and canonicalizes paths and lists.
func normalize(cfg *Config) error {
	format, err := ParseOutputFormat(string(cfg.Output.Format))
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid output.format").
			WithContext("valid", OutputFormats()).
			Fatal().
			Build()
	}
	cfg.Output.Format = format

	lvl, err := logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level))
	if err != nil {
		slog.Warn("Unknown logging.level, using info", logfields.Error(err))
		lvl = LogLevelInfo
	}
	cfg.Logging.Level = lvl
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))

	exts := make([]string, 0, len(cfg.Content.Extensions))
	for _, ext := range cfg.Content.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	cfg.Content.Extensions = exts

	for i, r := range cfg.Content.PartitionExempt {
		cfg.Content.PartitionExempt[i] = site.NormalizePath(r)
	}
	cfg.Notify.Subject = strings.TrimSpace(cfg.Notify.Subject)
	cfg.Notify.Backoff = NormalizeBackoffMode(string(cfg.Notify.Backoff))
	cfg.Notify.RetryDelay = strings.TrimSpace(cfg.Notify.RetryDelay)
	cfg.Verify.Schedule = strings.TrimSpace(cfg.Verify.Schedule)
	return nil
}

// applyDefaults fills values explicitly emptied in the file.
func applyDefaults(cfg *Config) {
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "./docs"
	}
	if len(cfg.Content.Extensions) == 0 {
		cfg.Content.Extensions = []string{".md"}
	}
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory(cfg.Output.Format)
	}
	if cfg.Notify.Subject == "" {
		cfg.Notify.Subject = "feguide.verify"
	}
	if cfg.Notify.RetryDelay == "" {
		cfg.Notify.RetryDelay = "200ms"
	}
	if cfg.Preview.Port == 0 {
		cfg.Preview.Port = 4173
	}
}
