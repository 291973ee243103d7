// Package config loads the feguide tool configuration (feguide.yaml) and the
// optional YAML site definition.
package config

// DefaultPath is the configuration file used when --config is not given.
const DefaultPath = "feguide.yaml"

// CurrentVersion is the only configuration version this build understands.
const CurrentVersion = "1.0"

// Config is the feguide tool configuration.
type Config struct {
	Version  string        `yaml:"version"`
	SiteFile string        `yaml:"site_file,omitempty"` // Optional YAML site definition; empty uses the built-in guide
	Content  ContentConfig `yaml:"content"`
	Output   OutputConfig  `yaml:"output"`
	Verify   VerifyConfig  `yaml:"verify"`
	Notify   NotifyConfig  `yaml:"notify"`
	Preview  PreviewConfig `yaml:"preview"`
	Logging  LoggingConfig `yaml:"logging"`
}

// ContentConfig describes where the Markdown pages live.
type ContentConfig struct {
	Dir             string   `yaml:"dir"`
	Extensions      []string `yaml:"extensions"`
	Exclude         []string `yaml:"exclude"`
	PartitionExempt []string `yaml:"partition_exempt"` // Routes allowed to sit outside every sidebar section
	GitLastUpdated  bool     `yaml:"git_last_updated"`
}

// OutputConfig controls the rendered site configuration.
type OutputConfig struct {
	Directory string       `yaml:"directory"`
	Format    OutputFormat `yaml:"format"`
	Clean     bool         `yaml:"clean"`
}

// VerifyConfig tunes the verification run.
type VerifyConfig struct {
	RequiredSearchKeys []string `yaml:"required_search_keys"`
	BuiltSiteDir       string   `yaml:"built_site_dir,omitempty"` // Built HTML to scan for dangling links
	Schedule           string   `yaml:"schedule,omitempty"`       // Cron expression for preview re-verification
	HistoryDB          string   `yaml:"history_db,omitempty"`     // SQLite file; empty disables history
}

// NotifyConfig enables publishing verification summaries over NATS.
type NotifyConfig struct {
	NATSURL    string      `yaml:"nats_url,omitempty"`
	Subject    string      `yaml:"subject"`
	MaxRetries int         `yaml:"max_retries"`
	Backoff    BackoffMode `yaml:"backoff"`
	RetryDelay string      `yaml:"retry_delay"` // Initial backoff delay, Go duration syntax
}

// PreviewConfig configures `feguide serve`.
type PreviewConfig struct {
	Port    int  `yaml:"port"`
	Metrics bool `yaml:"metrics"`
}

type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// DefaultRequiredSearchKeys are the local-search strings every locale must
// translate.
var DefaultRequiredSearchKeys = []string{
	"button.buttonText",
	"button.buttonAriaLabel",
	"modal.noResultsText",
	"modal.resetButtonTitle",
	"modal.footer.selectText",
	"modal.footer.navigateText",
	"modal.footer.closeText",
}
