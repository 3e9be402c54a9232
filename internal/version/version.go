// Package version centralizes build metadata for the gateway binaries.
// The variables are meant to be overridden at link time, e.g.:
//
//	go build -ldflags "-X .../internal/version.Version=v1.2.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildDate is the UTC timestamp of the build.
	BuildDate = "unknown"
	// GitCommit is the short hash the binary was built from.
	GitCommit = "unknown"
)

// BuildInfo is a snapshot of the build metadata plus runtime details.
type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

// Get returns the build information for this binary.
func Get() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
