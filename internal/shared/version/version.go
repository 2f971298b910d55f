// Package version holds the build version stamped in with -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/vpndash/vpndash/internal/shared/version.Version=1.2.0"
var (
	Version = "dev"
	Commit  = ""
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semver release without a prerelease suffix.
func IsRelease(v string) bool {
	v = Normalize(v)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// String renders the running build, e.g. "v1.2.0 (abc1234)" or "dev".
func String() string {
	v := Version
	if semver.IsValid(Normalize(v)) {
		v = Normalize(v)
	}
	if Commit == "" {
		return v
	}
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return v + " (" + commit + ")"
}
