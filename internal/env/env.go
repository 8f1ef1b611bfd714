// Package env carries build-time metadata, injected via -ldflags.
package env

var (
	AppName    = "fatlens"
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
