// Package buildinfo carries version data stamped at link time with
// -ldflags "-X github.com/autosave-dev/autosave/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build data for --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
