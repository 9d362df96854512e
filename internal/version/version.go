// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo is the metadata printed by the version command.
type BuildInfo struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
}

// GetBuildInfo returns the build metadata, filling in VCS details from
// the embedded build info when no -ldflags values were set.
func GetBuildInfo() *BuildInfo {
	version, commit := resolve()
	return &BuildInfo{
		Version:   version,
		GitCommit: commit,
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// GetShortVersion returns a single-line version suitable for display.
func GetShortVersion() string {
	version, commit := resolve()
	if commit == "unknown" || len(commit) < 7 {
		return version
	}
	if version == "dev" {
		return fmt.Sprintf("dev-%s", commit[:7])
	}
	return fmt.Sprintf("%s (%s)", version, commit[:7])
}

func resolve() (version, commit string) {
	version, commit = Version, GitCommit

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}

	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "unknown" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				commit = setting.Value
				break
			}
		}
	}

	return version, commit
}

func parseBuildTime(raw string) time.Time {
	if raw == "" || raw == "unknown" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t
	}
	return time.Time{}
}
