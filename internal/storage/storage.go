package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/rollcall/internal/roster"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrTrackingIDConflict indicates an appended roster would reuse tracking
// ids already present in the store.
var ErrTrackingIDConflict = errors.New("tracking id already present in roster")

// StudentName is one stored roster row.
type StudentName struct {
	TrackingID int64
	FirstName  string
	LastName   string
	ImportedAt time.Time
	SourceFile string
}

// ImportStamp labels roster rows with the import run that wrote them.
type ImportStamp struct {
	RunID      string
	SourceFile string
	ImportedAt time.Time
}

// ScanRecord is one attendance row as appended to the scan log.
type ScanRecord struct {
	ID           int64
	TrackingID   int64
	FirstName    string
	LastName     string
	TimeHHMM     string
	DateMMDDYYYY string
}

// AuditEvent captures one operational event for the audit trail.
type AuditEvent struct {
	Timestamp time.Time
	EventName string
	Severity  string
	RunID     string
	Detail    string
}

// RosterStore persists imported rosters keyed by tracking id.
type RosterStore interface {
	// ReplaceRoster discards any stored roster and writes entries in its
	// place, stamping each row with the import run.
	ReplaceRoster(ctx context.Context, entries []roster.Entry, stamp ImportStamp) error
	// AppendRoster adds entries to the stored roster. It fails with
	// ErrTrackingIDConflict when any entry's tracking id is already
	// present, writing nothing.
	AppendRoster(ctx context.Context, entries []roster.Entry, stamp ImportStamp) error
	// LookupStudent returns the roster row for trackingID, or ErrNotFound.
	LookupStudent(ctx context.Context, trackingID int64) (StudentName, error)
}

// ScanStore appends attendance rows to the scan log.
type ScanStore interface {
	// InsertScan appends one attendance row and returns it with the
	// assigned row id.
	InsertScan(ctx context.Context, rec ScanRecord) (ScanRecord, error)
	// ListScansByDate returns the rows recorded on a MM:DD:YYYY date in
	// insertion order.
	ListScansByDate(ctx context.Context, dateMMDDYYYY string) ([]ScanRecord, error)
}

// TelemetryStore appends operational events to the audit trail.
type TelemetryStore interface {
	AppendAuditEvent(ctx context.Context, evt AuditEvent) error
}
