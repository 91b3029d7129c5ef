// Package version exposes the build metadata stamped into the dryspot binary.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Overridden at build time with -ldflags "-X github.com/kedare/dryspot/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
	BuildArch = ""
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	Platform  string `json:"platform"`
	GoVersion string `json:"goVersion"`
}

// Get returns build metadata with blank values replaced by their defaults.
func Get() Info {
	platform := strings.TrimSpace(BuildArch)
	if platform == "" {
		platform = runtime.GOOS + "/" + runtime.GOARCH
	}

	return Info{
		Version:   fallback(Version, "dev"),
		Commit:    fallback(Commit, "unknown"),
		BuildDate: fallback(BuildDate, "unknown"),
		Platform:  platform,
		GoVersion: runtime.Version(),
	}
}

// Short returns the version with a short commit hash, e.g. "1.2.0 (abcd123)".
func (i Info) Short() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}

	return fmt.Sprintf("%s (%s)", i.Version, commit)
}

// String renders every field on its own line, as printed by "dryspot version".
func (i Info) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "dryspot %s\n", i.Version)
	fmt.Fprintf(&b, "  commit:   %s\n", i.Commit)
	fmt.Fprintf(&b, "  built:    %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  platform: %s\n", i.Platform)
	fmt.Fprintf(&b, "  go:       %s\n", i.GoVersion)

	return b.String()
}

// UserAgent identifies dryspot in the Server header of HTTP responses.
func (i Info) UserAgent() string {
	return "dryspot/" + i.Version
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return strings.TrimSpace(value)
}
