package version

import "fmt"

var (
	// Version is set at build time with -ldflags "-X .../internal/version.Version=...".
	Version = "0.1.0-dev"

	// GitCommit is the commit the binary was built from, when known.
	GitCommit = ""
)

// HumanVersion returns the version with the commit appended when it is known.
func HumanVersion() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
