package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
	"git.home.luguber.info/inful/feguide/internal/logfields"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Content: ContentConfig{
			Dir:             "./docs",
			Extensions:      []string{".md"},
			Exclude:         []string{"node_modules", ".vitepress", "public"},
			PartitionExempt: []string{"/"},
		},
		Output: OutputConfig{
			Format: FormatVitePress, // directory follows the format, see applyDefaults
		},
		Verify: VerifyConfig{
			RequiredSearchKeys: append([]string(nil), DefaultRequiredSearchKeys...),
		},
		Notify:  NotifyConfig{Subject: "feguide.verify", MaxRetries: 2, Backoff: BackoffLinear, RetryDelay: "200ms"},
		Preview: PreviewConfig{Port: 4173, Metrics: true},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load reads the configuration at path. When required is false a missing
// file yields Default(); otherwise it is a config error.
//
// Values are layered: defaults, then the YAML file with ${VAR} references
// expanded (.env/.env.local next to the file are loaded first), then a
// normalization and validation pass.
func Load(path string, required bool) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", path).
				Build()
		}
		slog.Debug("No configuration file, using defaults", logfields.Path(path))
		cfg := Default()
		if err := finalize(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Fatal().
			Build()
	}
	cfg, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		if ce, ok := errors.AsClassified(err); ok {
			return nil, ce.WithContext("path", path)
		}
		return nil, err
	}
	slog.Debug("Configuration loaded", logfields.Path(path))
	return cfg, nil
}

// Parse decodes YAML over Default() and finalizes the result. Keys absent
// from data keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config").
			Fatal().
			Build()
	}
	if cfg.Version != CurrentVersion {
		return nil, errors.ConfigError("unsupported configuration version").
			WithContext("version", cfg.Version).
			WithContext("expected", CurrentVersion).
			Build()
	}
	if err := finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func finalize(cfg *Config) error {
	if err := normalize(cfg); err != nil {
		return err
	}
	applyDefaults(cfg)
	return validate(cfg)
}

// Init writes an example configuration file.
func Init(path string, force bool, opts ...func(*Config)) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	example := Default()
	for _, o := range opts {
		o(example)
	}
	applyDefaults(example)
	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	header := "# feguide configuration. Values may reference ${ENV_VARS}; .env files next to\n" +
		"# this file are loaded first.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
