// Package version exposes build version information.
package version

// Version is the application version, overridable at build time via
// -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"
