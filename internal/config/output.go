package config

import "git.home.luguber.info/inful/feguide/internal/foundation/normalization"

// OutputFormat selects the site generator the configuration is rendered for.
type OutputFormat string

const (
	FormatVitePress OutputFormat = "vitepress"
	FormatHugo      OutputFormat = "hugo"
)

var outputFormatNormalizer = normalization.NewNormalizer(map[string]OutputFormat{
	"vitepress": FormatVitePress,
	"vite":      FormatVitePress,
	"hugo":      FormatHugo,
}, FormatVitePress)

// ParseOutputFormat normalizes raw; empty input yields vitepress.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.NormalizeWithError(raw)
}

// OutputFormats lists the accepted spellings.
func OutputFormats() []string { return outputFormatNormalizer.ValidKeys() }

// DefaultOutputDirectory is where a format's configuration file goes when
// output.directory is unset: the VitePress config dir, or the Hugo site root.
func DefaultOutputDirectory(format OutputFormat) string {
	if format == FormatHugo {
		return "."
	}
	return "./docs/.vitepress"
}
