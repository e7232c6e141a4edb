// Package version reports the polltimer build, injected via ldflags.
package version

import "fmt"

// Set with -ldflags "-X github.com/carverauto/polltimer/pkg/version.version=..."
//
//nolint:gochecknoglobals // ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// String returns the version, build ID and the clock target compiled in.
func String(target fmt.Stringer) string {
	return fmt.Sprintf("%s (build: %s, clock: %s)", version, buildID, target)
}
