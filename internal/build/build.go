// Package build holds build-time information.
package build

// These default to development values and are overwritten by linker flags.
var (
	// Version is the launcher release, compared against the latest published tag.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
