// Package buildinfo exposes the version identity of a release binary.
package buildinfo

// Overridden through -ldflags "-X ..." by the release build; a plain
// `go build` keeps the development placeholders.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
