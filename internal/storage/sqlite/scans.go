package sqlite

import (
	"context"
	"fmt"

	"github.com/louisbranch/rollcall/internal/storage"
)

// InsertScan appends one attendance row to the scan log and returns it
// with the assigned row id.
func (s *Store) InsertScan(ctx context.Context, rec storage.ScanRecord) (storage.ScanRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ScanRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ScanRecord{}, fmt.Errorf("storage is not configured")
	}

	res, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO `+tableScans+` (tracking_id, first_name, last_name, time_hhmm, date_mmddyyyy)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.TrackingID,
		rec.FirstName,
		rec.LastName,
		rec.TimeHHMM,
		rec.DateMMDDYYYY,
	)
	if err != nil {
		return storage.ScanRecord{}, fmt.Errorf("insert scan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storage.ScanRecord{}, fmt.Errorf("insert scan id: %w", err)
	}
	rec.ID = id
	return rec, nil
}

// ListScansByDate returns the scan rows recorded on one MM:DD:YYYY date in
// insertion order.
func (s *Store) ListScansByDate(ctx context.Context, dateMMDDYYYY string) ([]storage.ScanRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, tracking_id, first_name, last_name, time_hhmm, date_mmddyyyy
		   FROM `+tableScans+`
		  WHERE date_mmddyyyy = ?
		  ORDER BY id ASC`,
		dateMMDDYYYY,
	)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var recs []storage.ScanRecord
	for rows.Next() {
		var rec storage.ScanRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.TrackingID,
			&rec.FirstName,
			&rec.LastName,
			&rec.TimeHHMM,
			&rec.DateMMDDYYYY,
		); err != nil {
			return nil, fmt.Errorf("list scans: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	return recs, nil
}

var _ storage.ScanStore = (*Store)(nil)
