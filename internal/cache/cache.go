// Package cache provides the local SQLite store behind the recent locations history.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kedare/dryspot/internal/logger"

	_ "modernc.org/sqlite"
)

const (
	// CacheDir is the directory under the user's home that holds the database.
	CacheDir = ".dryspot"
	// CacheFileName is the name of the SQLite database file.
	CacheFileName = "dryspot.db"
	// CacheFilePermissions defines the file permissions for the database (owner read/write only).
	CacheFilePermissions = 0o600
	// DefaultHistoryTTL is how long a location stays in the history without being used again.
	DefaultHistoryTTL = 90 * 24 * time.Hour
	// DefaultHistoryLimit is how many recent locations are offered when no limit is given.
	DefaultHistoryLimit = 10
)

// ErrCacheDisabled is returned by writes when the cache is disabled or not open.
var ErrCacheDisabled = errors.New("cache is disabled")

// Cache is the SQLite-backed store for recent locations and settings.
type Cache struct {
	db      *sql.DB
	dbPath  string
	session uuid.UUID
	stats   *Stats
}

// New opens the cache in the user's home directory, creating it when needed.
func New() (*Cache, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Log.Errorf("Failed to get user home directory: %v", err)

		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	cacheDir, err := ensureCacheDir(homeDir)
	if err != nil {
		return nil, err
	}

	return Open(filepath.Join(cacheDir, CacheFileName))
}

// Open opens or creates the cache database at dbPath.
func Open(dbPath string) (*Cache, error) {
	logger.Log.Debugf("Cache database path: %s", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)

	if err := prepareSchema(db); err != nil {
		_ = db.Close()

		return nil, err
	}

	// The file only exists once the schema has been written.
	if err := os.Chmod(dbPath, CacheFilePermissions); err != nil {
		logger.Log.Debugf("Failed to set cache file permissions: %v", err)
	}

	c := &Cache{
		db:      db,
		dbPath:  dbPath,
		session: uuid.New(),
		stats:   newStats(),
	}

	logger.Log.Debugf("Cache opened (session %s)", c.session)

	return c, nil
}

// Session returns the identifier stamped on history rows written by this process.
func (c *Cache) Session() uuid.UUID {
	if c == nil {
		return uuid.Nil
	}

	return c.session
}

// Path returns the database file path.
func (c *Cache) Path() string {
	if c == nil {
		return ""
	}

	return c.dbPath
}

// Close logs the session statistics and closes the database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}

	c.LogStats()

	err := c.db.Close()
	c.db = nil

	return err
}

// isNoOp reports whether reads and writes should be skipped.
func (c *Cache) isNoOp() bool {
	return c == nil || c.db == nil || !Enabled()
}

func (c *Cache) exec(query string, args ...any) (sql.Result, error) {
	logSQL(query, args...)

	return c.db.Exec(query, args...)
}

func (c *Cache) queryRow(query string, args ...any) *sql.Row {
	logSQL(query, args...)

	return c.db.QueryRow(query, args...)
}

// logSQL traces every statement sent to SQLite.
func logSQL(query string, args ...any) {
	if len(args) == 0 {
		logger.Log.Tracef("SQL: %s", query)

		return
	}

	logger.Log.Tracef("SQL: %s %v", query, args)
}
