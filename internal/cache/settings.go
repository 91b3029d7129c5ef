package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kedare/dryspot/internal/logger"
)

const historyTTLKey = "history_ttl"

// HistoryTTL returns the configured history retention, or DefaultHistoryTTL when unset.
func (c *Cache) HistoryTTL() time.Duration {
	if c == nil || c.db == nil {
		return DefaultHistoryTTL
	}

	start := time.Now()
	defer func() {
		c.stats.recordOperation("HistoryTTL", time.Since(start))
	}()

	var value string

	err := c.queryRow(`SELECT value FROM settings WHERE key = ?`, historyTTLKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultHistoryTTL
	}

	if err != nil {
		logger.Log.Warnf("Failed to read history TTL, using default: %v", err)

		return DefaultHistoryTTL
	}

	seconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || seconds <= 0 {
		return DefaultHistoryTTL
	}

	return time.Duration(seconds) * time.Second
}

// SetHistoryTTL stores the history retention. It must be at least one second.
func (c *Cache) SetHistoryTTL(ttl time.Duration) error {
	if c == nil || c.db == nil {
		return ErrCacheDisabled
	}

	if ttl < time.Second {
		return fmt.Errorf("history TTL must be at least 1s, got %v", ttl)
	}

	value := strconv.FormatInt(int64(ttl/time.Second), 10)

	if _, err := c.exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, historyTTLKey, value); err != nil {
		return fmt.Errorf("failed to set history TTL: %w", err)
	}

	logger.Log.Debugf("Set history TTL to %v", ttl)

	return nil
}

// ResetHistoryTTL removes the stored retention so DefaultHistoryTTL applies.
func (c *Cache) ResetHistoryTTL() error {
	if c == nil || c.db == nil {
		return ErrCacheDisabled
	}

	if _, err := c.exec(`DELETE FROM settings WHERE key = ?`, historyTTLKey); err != nil {
		return fmt.Errorf("failed to reset history TTL: %w", err)
	}

	return nil
}
