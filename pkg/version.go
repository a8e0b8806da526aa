// Package gndwca holds the project-wide metadata of the gndwca app.
package gndwca

var (
	// Version is set by the build process with ldflags.
	Version = "v0.1.0"

	// Build is a timestamp of the compilation, set with ldflags.
	Build = "n/a"
)
