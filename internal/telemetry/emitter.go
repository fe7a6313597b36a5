// Package telemetry records operational audit events emitted by the
// rollcall commands.
package telemetry

import (
	"context"
	"time"

	"github.com/louisbranch/rollcall/internal/storage"
)

// Severity describes the audit event severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Emitter records operational audit events stamped with one run id.
type Emitter struct {
	store storage.TelemetryStore
	runID string
	clock func() time.Time
}

// NewEmitter creates a new audit emitter for one command run.
func NewEmitter(store storage.TelemetryStore, runID string) *Emitter {
	return &Emitter{store: store, runID: runID, clock: time.Now}
}

// Emit records an audit event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, name string, severity Severity, detail string) error {
	if e == nil || e.store == nil {
		return nil
	}
	evt := storage.AuditEvent{
		EventName: name,
		Severity:  string(severity),
		RunID:     e.runID,
		Detail:    detail,
	}
	if e.clock == nil {
		evt.Timestamp = time.Now().UTC()
	} else {
		evt.Timestamp = e.clock().UTC()
	}
	return e.store.AppendAuditEvent(ctx, evt)
}
