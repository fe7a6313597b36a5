package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/rollcall/internal/storage"
)

// AppendAuditEvent appends one operational event to the audit trail.
func (s *Store) AppendAuditEvent(ctx context.Context, evt storage.AuditEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	ts := evt.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO `+tableAuditEvents+` (timestamp, event_name, severity, run_id, detail)
		 VALUES (?, ?, ?, ?, ?)`,
		toMillis(ts),
		evt.EventName,
		evt.Severity,
		evt.RunID,
		evt.Detail,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListAuditEvents returns the audit trail in insertion order.
func (s *Store) ListAuditEvents(ctx context.Context) ([]storage.AuditEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT timestamp, event_name, severity, run_id, detail
		   FROM `+tableAuditEvents+`
		  ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var evts []storage.AuditEvent
	for rows.Next() {
		var evt storage.AuditEvent
		var ts int64
		if err := rows.Scan(&ts, &evt.EventName, &evt.Severity, &evt.RunID, &evt.Detail); err != nil {
			return nil, fmt.Errorf("list audit events: %w", err)
		}
		evt.Timestamp = fromMillis(ts)
		evts = append(evts, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return evts, nil
}

var _ storage.TelemetryStore = (*Store)(nil)
