// Package version exposes the build version of tagpages.
package version

import "github.com/Masterminds/semver/v3"

// version is stamped at build time:
//
//	go build -ldflags "-X github.com/rshade/tagpages/pkg/version.version=v1.2.3"
var version = "dev" //nolint:gochecknoglobals // Set by ldflags.

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

// IsRelease reports whether v is a semantic version without a prerelease suffix.
func IsRelease(v string) bool {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}
