package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/kedare/dryspot/internal/logger"
)

// HistoryEntry is a previously selected location.
type HistoryEntry struct {
	Location  string
	LastUsed  time.Time
	UseCount  int
	SessionID string
}

// AddLocation records that location was selected. Blank locations are ignored.
// The location is stored verbatim.
func (c *Cache) AddLocation(location string) error {
	if c.isNoOp() {
		return nil
	}

	if strings.TrimSpace(location) == "" {
		return nil
	}

	start := time.Now()
	defer func() {
		c.stats.recordOperation("AddLocation", time.Since(start))
	}()

	now := time.Now().UnixNano()

	_, err := c.exec(`
		INSERT INTO location_history (location, last_used, use_count, session_id)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(location) DO UPDATE SET
			last_used = excluded.last_used,
			use_count = use_count + 1,
			session_id = excluded.session_id`,
		location, now, c.session.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to record location %q: %w", location, err)
	}

	return nil
}

// History returns recent locations, most recent first.
// A limit of zero or less uses DefaultHistoryLimit.
func (c *Cache) History(limit int) ([]HistoryEntry, error) {
	if c.isNoOp() {
		return nil, nil
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	start := time.Now()
	defer func() {
		c.stats.recordOperation("History", time.Since(start))
	}()

	query := `SELECT location, last_used, use_count, session_id FROM location_history
		ORDER BY last_used DESC LIMIT ?`
	logSQL(query, limit)

	rows, err := c.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read location history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			e        HistoryEntry
			lastUsed int64
		)

		if err := rows.Scan(&e.Location, &lastUsed, &e.UseCount, &e.SessionID); err != nil {
			logger.Log.Warnf("Failed to scan location history: %v", err)
			continue
		}

		e.LastUsed = time.Unix(0, lastUsed)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// RecentLocations returns up to limit location strings, most recent first.
func (c *Cache) RecentLocations(limit int) ([]string, error) {
	entries, err := c.History(limit)
	if err != nil {
		return nil, err
	}

	locations := make([]string, len(entries))
	for i, e := range entries {
		locations[i] = e.Location
	}

	return locations, nil
}

// CleanHistory removes locations not used within maxAge and returns how many were removed.
func (c *Cache) CleanHistory(maxAge time.Duration) (int64, error) {
	if c.isNoOp() {
		return 0, nil
	}

	start := time.Now()
	defer func() {
		c.stats.recordOperation("CleanHistory", time.Since(start))
	}()

	cutoff := time.Now().Add(-maxAge).UnixNano()

	result, err := c.exec(`DELETE FROM location_history WHERE last_used < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean location history: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		logger.Log.Debugf("Cleaned %d old history entries", deleted)
	}

	return deleted, nil
}

// ClearHistory removes every recorded location.
func (c *Cache) ClearHistory() (int64, error) {
	if c == nil || c.db == nil {
		return 0, ErrCacheDisabled
	}

	result, err := c.exec(`DELETE FROM location_history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear location history: %w", err)
	}

	deleted, _ := result.RowsAffected()

	return deleted, nil
}
