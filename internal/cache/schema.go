package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kedare/dryspot/internal/logger"
)

// SchemaVersion is stamped into the metadata table of every database this build creates.
const SchemaVersion = 1

// ErrNewerSchema is returned when the database was written by a newer dryspot.
var ErrNewerSchema = errors.New("cache database was created by a newer version of dryspot")

// schema is the complete layout of the history store. Every statement is
// idempotent so it can run on each open.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS location_history (
		location TEXT PRIMARY KEY,
		last_used INTEGER NOT NULL,
		use_count INTEGER NOT NULL DEFAULT 1,
		session_id TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_location_history_last_used
		ON location_history(last_used DESC)`,
}

// prepareSchema creates the tables on first use and checks the stamped
// version on every later open.
func prepareSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		logSQL(stmt)

		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	version, err := schemaVersion(tx)
	if err != nil {
		return err
	}

	switch {
	case version > SchemaVersion:
		return fmt.Errorf("%w (schema %d, supported %d)", ErrNewerSchema, version, SchemaVersion)
	case version == 0:
		if err := stampSchemaVersion(tx, SchemaVersion); err != nil {
			return err
		}

		logger.Log.Debugf("Created cache schema version %d", SchemaVersion)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	return nil
}

type queryer interface {
	QueryRow(query string, args ...any) *sql.Row
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// schemaVersion reads the stamped version, 0 for a database never stamped.
func schemaVersion(q queryer) (int, error) {
	var version int

	query := "SELECT value FROM metadata WHERE key = 'schema_version'"
	logSQL(query)

	err := q.QueryRow(query).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, nil
}

func stampSchemaVersion(e execer, version int) error {
	query := "INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)"
	logSQL(query, version)

	if _, err := e.Exec(query, version); err != nil {
		return fmt.Errorf("failed to stamp schema version: %w", err)
	}

	return nil
}

// ensureCacheDir creates ~/.dryspot readable only by its owner.
func ensureCacheDir(homeDir string) (string, error) {
	cacheDir := filepath.Join(homeDir, CacheDir)

	if err := os.MkdirAll(cacheDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	return cacheDir, nil
}
