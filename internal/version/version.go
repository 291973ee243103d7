package version

import "fmt"

// Version is stamped at build time:
// go build -ldflags "-X git.home.luguber.info/inful/feguide/internal/version.Version=v1.2.0".
var Version = "unknown"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("feguide %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
