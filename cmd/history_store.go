package cmd

import (
	"github.com/kedare/dryspot/internal/cache"
	"github.com/kedare/dryspot/internal/logger"
)

// openCache is swapped in tests to point at a temporary database.
var openCache = cache.New

// openHistory opens the history store for commands that can run without it.
// A failing store is logged and nil is returned.
func openHistory() *cache.Cache {
	if !cache.Enabled() {
		logger.Log.Debugf("Location history disabled")

		return nil
	}

	c, err := openCache()
	if err != nil {
		logger.Log.Warnf("Location history unavailable: %v", err)

		return nil
	}

	logger.Log.Debugf("Recording history in %s (session %s)", c.Path(), c.Session())

	if removed, err := c.CleanHistory(c.HistoryTTL()); err != nil {
		logger.Log.Warnf("Failed to expire old locations: %v", err)
	} else if removed > 0 {
		logger.Log.Debugf("Expired %d old locations", removed)
	}

	return c
}

func closeHistory(c *cache.Cache) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		logger.Log.Debugf("Failed to close cache: %v", err)
	}
}
