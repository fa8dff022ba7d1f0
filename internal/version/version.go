package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/propconv/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/propconv/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/propconv/internal/version.Date={{.Date}}
)

// Info returns the multi-line version banner.
func Info() string {
	s := fmt.Sprintf("propconv version %s\n", Version)
	if Commit != "" {
		s += fmt.Sprintf("Commit: %s\n", Commit)
	}
	if Date != "" {
		s += fmt.Sprintf("Built:  %s\n", Date)
	}
	return s
}
