// Package version provides version information for quizcore, with
// build-time injection via -ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "unknown"

	// BuildDate is the date the binary was built.
	BuildDate = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFormattedVersion returns a one-line version string for the version
// command.
func GetFormattedVersion() string {
	parts := []string{fmt.Sprintf("quizd v%s", Version)}

	if GitCommit != "unknown" && GitCommit != "" {
		shortCommit := GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}

	if BuildDate != "unknown" && BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", BuildDate))
	}

	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns multi-line version information for debugging.
func GetDetailedVersion() string {
	lines := []string{
		fmt.Sprintf("quizd v%s", Version),
		fmt.Sprintf("Git Commit: %s", GitCommit),
		fmt.Sprintf("Build Date: %s", BuildDate),
		fmt.Sprintf("Go Version: %s", runtime.Version()),
		fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH),
	}
	return strings.Join(lines, "\n")
}

// ValidateVersion checks that the compiled-in version is a valid semantic
// version.
func ValidateVersion() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid semantic version %q: %w", Version, err)
	}
	return nil
}

// IsDevelopment reports whether this appears to be a development build.
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}
