// Package tactician provides the version information for tactician.
package tactician

// Version is the current version of tactician.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
