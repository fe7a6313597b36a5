// Package sqlite provides a SQLite-backed rollcall storage implementation.
package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Table names owned by this store. The roster table is created by the
// import path; the other two are ensured at Open.
const (
	tableNames       = "names"
	tableScans       = "scans"
	tableAuditEvents = "audit_events"
)

// Store persists roster, scan, and audit state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite rollcall store and ensures the scan log and audit
// trail tables exist. The roster table is owned by the import path, which
// creates it when a roster is loaded.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureSchema(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func ensureSchema(sqlDB *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + tableScans + ` (
		   id INTEGER PRIMARY KEY AUTOINCREMENT,
		   tracking_id INTEGER,
		   first_name TEXT,
		   last_name TEXT,
		   time_hhmm TEXT,
		   date_mmddyyyy TEXT
		 )`,
		`CREATE TABLE IF NOT EXISTS ` + tableAuditEvents + ` (
		   id INTEGER PRIMARY KEY AUTOINCREMENT,
		   timestamp INTEGER NOT NULL,
		   event_name TEXT NOT NULL,
		   severity TEXT NOT NULL,
		   run_id TEXT,
		   detail TEXT
		 )`,
	}
	for _, stmt := range stmts {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
