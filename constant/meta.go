// Package constant holds application wide identifiers.
package constant

const (
	// Marquee is the application name used for paths, env variables and branding.
	Marquee = "marquee"

	// Version is the current semantic version.
	Version = "0.3.1"

	// UserAgent is sent with every catalog request.
	UserAgent = Marquee + "/" + Version
)

// Build information, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
