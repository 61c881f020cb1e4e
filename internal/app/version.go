package app

import "fmt"

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X github.com/tejashwikalptaru/helpabout/internal/app.Version=3.0.0" ./cmd
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = ""
	BuildTime = "unknown"
)

// VersionInfo contains version information for the application.
type VersionInfo struct {
	Version   string
	GitCommit string
	GitTag    string
	BuildTime string
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// String returns the version shown to users: the git tag when the build has
// one, the version otherwise.
func (v VersionInfo) String() string {
	if v.GitTag != "" {
		return v.GitTag
	}
	return v.Version
}

// FullString returns a detailed version string for logging.
func (v VersionInfo) FullString() string {
	return fmt.Sprintf("helpabout %s (commit: %s, built: %s)", v.String(), v.GitCommit, v.BuildTime)
}
