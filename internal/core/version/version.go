// Package version reports what build of reduce is running
package version

import "fmt"

// BuildInfo holds version information about a reduce binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set at link time:
// -ldflags "-X reduce/internal/core/version.version=v0.1.0 -X reduce/internal/core/version.commit=abcd"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information for the named binary
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders a one line banner
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Service, b.Version, b.Commit, b.Date)
}
