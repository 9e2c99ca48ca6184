// Package version holds build metadata injected via ldflags.
package version

var (
	// Version is the semantic version of this build
	Version = "dev"

	// Commit is the git commit this build was made from
	Commit = "none"

	// Date is the build date
	Date = "unknown"
)
