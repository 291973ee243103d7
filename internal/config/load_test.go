package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/feguide/internal/foundation/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, "./docs", cfg.Content.Dir)
	assert.Equal(t, "./docs/.vitepress", cfg.Output.Directory)
	assert.Equal(t, FormatVitePress, cfg.Output.Format)
	assert.Equal(t, []string{"/"}, cfg.Content.PartitionExempt)
	assert.Equal(t, DefaultRequiredSearchKeys, cfg.Verify.RequiredSearchKeys)
	assert.Equal(t, 4173, cfg.Preview.Port)
	assert.True(t, cfg.Preview.Metrics)
	assert.False(t, cfg.Notify.Enabled())

	_, err = Load(missing, true)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLoad_OverridesAndExpansion(t *testing.T) {
	t.Setenv("FEGUIDE_TEST_NATS", "nats://127.0.0.1:4222")
	path := writeConfig(t, `version: "1.0"
content:
  dir: ./site-docs
  extensions: ["MD", ".markdown"]
  partition_exempt: ["/about.md", "/"]
output:
  format: Hugo
notify:
  nats_url: ${FEGUIDE_TEST_NATS}
  backoff: EXP
  retry_delay: 1s
preview:
  metrics: false
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "./site-docs", cfg.Content.Dir)
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Content.Extensions)
	assert.Equal(t, []string{"/about", "/"}, cfg.Content.PartitionExempt)
	assert.Equal(t, []string{"node_modules", ".vitepress", "public"}, cfg.Content.Exclude, "untouched keys keep defaults")
	assert.Equal(t, FormatHugo, cfg.Output.Format)
	assert.Equal(t, ".", cfg.Output.Directory)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Notify.NATSURL)
	assert.Equal(t, "feguide.verify", cfg.Notify.Subject)
	assert.Equal(t, BackoffExponential, cfg.Notify.Backoff)
	assert.Equal(t, time.Second, cfg.Notify.InitialDelay())
	assert.Equal(t, 2, cfg.Notify.MaxRetries)
	assert.False(t, cfg.Preview.Metrics)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FEGUIDE_TEST_PORT", "")
	require.NoError(t, os.Unsetenv("FEGUIDE_TEST_PORT"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FEGUIDE_TEST_PORT=5180\n"), 0o644))
	path := filepath.Join(dir, DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\npreview:\n  port: ${FEGUIDE_TEST_PORT}\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, 5180, cfg.Preview.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		category errors.ErrorCategory
	}{
		{"version", "version: \"2.0\"\n", errors.CategoryConfig},
		{"yaml", "version: [\n", errors.CategoryConfig},
		{"format", "version: \"1.0\"\noutput:\n  format: jekyll\n", errors.CategoryValidation},
		{"port", "version: \"1.0\"\npreview:\n  port: 70000\n", errors.CategoryValidation},
		{"schedule", "version: \"1.0\"\nverify:\n  schedule: \"every hour\"\n", errors.CategoryValidation},
		{"search key", "version: \"1.0\"\nverify:\n  required_search_keys: [\"button.buttonText\", \" \"]\n", errors.CategoryValidation},
		{"retries", "version: \"1.0\"\nnotify:\n  max_retries: -1\n", errors.CategoryValidation},
		{"retry delay", "version: \"1.0\"\nnotify:\n  retry_delay: soon\n", errors.CategoryValidation},
		{"subject", "version: \"1.0\"\nnotify:\n  nats_url: nats://localhost\n  subject: \"feguide.*\"\n", errors.CategoryValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, tt.category), "got %v", err)
		})
	}
}

func TestLoad_UnknownLogLevelFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: \"1.0\"\nlogging:\n  level: chatty\n"), true)
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
}

func TestLoad_ScheduleDescriptor(t *testing.T) {
	cfg, err := Load(writeConfig(t, "version: \"1.0\"\nverify:\n  schedule: \"@every 1h\"\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "@every 1h", cfg.Verify.Schedule)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Init(path, false))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default().Content, cfg.Content)
	assert.Equal(t, "./docs/.vitepress", cfg.Output.Directory)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.NoError(t, Init(path, true))
}

func TestInit_WithOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, Init(path, false, func(c *Config) {
		c.SiteFile = "feguide.site.yaml"
		c.Output.Format = FormatHugo
	}))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "feguide.site.yaml", cfg.SiteFile)
	assert.Equal(t, ".", cfg.Output.Directory)
}

func TestLogLevel_SlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	assert.Equal(t, "WARN", NormalizeLogLevel("Warning").SlogLevel().String())
	assert.Equal(t, "INFO", LogLevel("").SlogLevel().String())
}
