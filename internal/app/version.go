package app

import (
	"fmt"
	"runtime"
)

// AppName identifies the service in logs and health responses.
const AppName = "companyportal"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/sharankona/CompanyPortal-sub000/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// Info returns the build information of the running binary.
func Info() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", AppName, b.Version, b.Commit, b.BuildTime, b.GoVersion)
}

// BuildVersion returns the short version string reported by /health.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}
