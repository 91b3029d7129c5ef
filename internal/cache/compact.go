package cache

import (
	"fmt"
	"os"
	"time"

	"github.com/kedare/dryspot/internal/logger"
)

// CompactResult reports the database file size around a Compact call.
type CompactResult struct {
	SizeBefore int64
	SizeAfter  int64
}

// Reclaimed returns the number of bytes freed.
func (r CompactResult) Reclaimed() int64 {
	return r.SizeBefore - r.SizeAfter
}

// Compact rewrites the database file so space left by deleted history is returned to the filesystem.
func (c *Cache) Compact() (CompactResult, error) {
	if c == nil || c.db == nil {
		return CompactResult{}, ErrCacheDisabled
	}

	start := time.Now()
	defer func() {
		c.stats.recordOperation("Compact", time.Since(start))
	}()

	var result CompactResult
	if fi, err := os.Stat(c.dbPath); err == nil {
		result.SizeBefore = fi.Size()
	}

	if _, err := c.exec("VACUUM"); err != nil {
		return CompactResult{}, fmt.Errorf("failed to vacuum database: %w", err)
	}

	if _, err := c.exec(
		`INSERT OR REPLACE INTO metadata (key, value) VALUES ('last_compacted', ?)`,
		time.Now().Format(time.RFC3339),
	); err != nil {
		logger.Log.Warnf("Failed to record compaction time: %v", err)
	}

	if fi, err := os.Stat(c.dbPath); err == nil {
		result.SizeAfter = fi.Size()
	}

	logger.Log.Debugf("Compacted %s: %d -> %d bytes", c.dbPath, result.SizeBefore, result.SizeAfter)

	return result, nil
}
