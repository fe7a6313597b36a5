package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/rollcall/internal/roster"
	"github.com/louisbranch/rollcall/internal/storage"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const createNamesTable = `CREATE TABLE IF NOT EXISTS ` + tableNames + ` (
   first_name TEXT,
   last_name TEXT,
   tracking_id INTEGER,
   imported_at TEXT,
   source_file TEXT
 )`

// ReplaceRoster discards any stored roster and writes entries in its
// place, then enforces tracking id uniqueness with a unique index.
func (s *Store) ReplaceRoster(ctx context.Context, entries []roster.Entry, stamp storage.ImportStamp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace roster: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+tableNames); err != nil {
		return fmt.Errorf("drop roster table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createNamesTable); err != nil {
		return fmt.Errorf("create roster table: %w", err)
	}
	if err := insertRosterRows(ctx, tx, entries, stamp); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_names_tracking_id ON `+tableNames+` (tracking_id)`); err != nil {
		return fmt.Errorf("index roster table: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace roster: %w", err)
	}
	return nil
}

// AppendRoster adds entries to the stored roster, creating the table when
// missing. When any entry's tracking id is already present nothing is
// written and the error wraps storage.ErrTrackingIDConflict.
func (s *Store) AppendRoster(ctx context.Context, entries []roster.Entry, stamp storage.ImportStamp) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append roster: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, createNamesTable); err != nil {
		return fmt.Errorf("create roster table: %w", err)
	}
	for _, e := range entries {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM `+tableNames+` WHERE tracking_id = ?`, e.TrackingID).Scan(&one)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %d", storage.ErrTrackingIDConflict, e.TrackingID)
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("check tracking id %d: %w", e.TrackingID, err)
		}
	}
	if err := insertRosterRows(ctx, tx, entries, stamp); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append roster: %w", err)
	}
	return nil
}

// LookupStudent returns the roster row for trackingID.
func (s *Store) LookupStudent(ctx context.Context, trackingID int64) (storage.StudentName, error) {
	if err := ctx.Err(); err != nil {
		return storage.StudentName{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.StudentName{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT first_name, last_name, tracking_id, imported_at, source_file
		   FROM `+tableNames+`
		  WHERE tracking_id = ?
		  LIMIT 1`,
		trackingID,
	)

	var rec storage.StudentName
	var importedAt sql.NullString
	var sourceFile sql.NullString
	err := row.Scan(&rec.FirstName, &rec.LastName, &rec.TrackingID, &importedAt, &sourceFile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.StudentName{}, storage.ErrNotFound
		}
		return storage.StudentName{}, fmt.Errorf("lookup student: %w", err)
	}
	if sourceFile.Valid {
		rec.SourceFile = sourceFile.String
	}
	if importedAt.Valid {
		ts, err := time.Parse(time.RFC3339, importedAt.String)
		if err != nil {
			return storage.StudentName{}, fmt.Errorf("parse imported_at: %w", err)
		}
		rec.ImportedAt = ts
	}
	return rec, nil
}

func insertRosterRows(ctx context.Context, tx *sql.Tx, entries []roster.Entry, stamp storage.ImportStamp) error {
	importedAt := stamp.ImportedAt
	if importedAt.IsZero() {
		importedAt = time.Now()
	}
	stampText := importedAt.UTC().Truncate(time.Second).Format(time.RFC3339)
	for _, e := range entries {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO `+tableNames+` (first_name, last_name, tracking_id, imported_at, source_file)
			 VALUES (?, ?, ?, ?, ?)`,
			e.FirstName,
			e.LastName,
			e.TrackingID,
			stampText,
			stamp.SourceFile,
		); err != nil {
			if isTrackingIDUniqueViolation(err) {
				return fmt.Errorf("%w: %d", storage.ErrTrackingIDConflict, e.TrackingID)
			}
			return fmt.Errorf("insert roster row: %w", err)
		}
	}
	return nil
}

func isTrackingIDUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, tableNames+".tracking_id")
}

var _ storage.RosterStore = (*Store)(nil)
