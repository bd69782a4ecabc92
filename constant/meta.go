// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "mediabar"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// MinMPVVersion is the oldest mpv whose IPC supports request_id tagged replies.
	MinMPVVersion = "0.18.0"
)

// Build metadata, overridden with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
