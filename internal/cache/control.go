package cache

import "sync"

var (
	cacheEnabled = true
	flagMu       sync.RWMutex
)

// Enabled reports whether the location history is read and written in this process.
func Enabled() bool {
	flagMu.RLock()
	defer flagMu.RUnlock()

	return cacheEnabled
}

// SetEnabled toggles history reads and writes globally (--no-cache).
func SetEnabled(enabled bool) {
	flagMu.Lock()
	cacheEnabled = enabled
	flagMu.Unlock()
}
