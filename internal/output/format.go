package output

import (
	"os"
	"strings"
	"sync"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the values accepted by --output.
var Formats = []string{FormatText, FormatJSON}

var (
	formatMu      sync.RWMutex
	currentFormat = FormatText
)

// DefaultFormat returns the preferred output format unless DRYSPOT_OUTPUT is set to a supported value.
// The result becomes the current format.
func DefaultFormat(preferred string, allowed []string) string {
	format := preferred

	env := strings.ToLower(strings.TrimSpace(os.Getenv("DRYSPOT_OUTPUT")))
	for _, option := range allowed {
		if env != "" && env == option {
			format = env

			break
		}
	}

	SetFormat(format)

	return format
}

// SetFormat records the output format chosen for this process.
func SetFormat(format string) {
	formatMu.Lock()
	currentFormat = strings.ToLower(strings.TrimSpace(format))
	formatMu.Unlock()
}

// IsJSONMode reports whether machine-readable output was requested.
// Decorations such as spinners stay off stdout and stderr in that mode.
func IsJSONMode() bool {
	formatMu.RLock()
	defer formatMu.RUnlock()

	return currentFormat == FormatJSON
}
