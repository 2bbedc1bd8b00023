// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "vidplay"

	// Version is the current application semantic version string.
	Version = "0.3.0"
)
