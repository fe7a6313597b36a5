package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/louisbranch/rollcall/internal/storage"
)

// Recorder persists attendance scans to the scan log and mirrors each one
// into the daily CSV tree.
type Recorder struct {
	store storage.ScanStore
	files *DayFile
	clock func() time.Time
}

// NewRecorder creates a recorder writing scans to store and day files
// under outputRoot.
func NewRecorder(store storage.ScanStore, outputRoot string) *Recorder {
	return &Recorder{store: store, files: NewDayFile(outputRoot), clock: time.Now}
}

// Record writes one attendance row for the student at the current instant.
// The scan log row is written before the CSV append; both carry the same
// timestamp. Returns the recorded event and the day file path.
func (r *Recorder) Record(ctx context.Context, trackingID int64, firstName, lastName string) (Event, string, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, "", err
	}
	now := time.Now()
	if r.clock != nil {
		now = r.clock()
	}
	evt := Event{
		TrackingID:   trackingID,
		FirstName:    firstName,
		LastName:     lastName,
		TimeHHMM:     now.Format(TimeLayout),
		DateMMDDYYYY: now.Format(DateLayout),
	}

	rec := storage.ScanRecord{
		TrackingID:   evt.TrackingID,
		FirstName:    evt.FirstName,
		LastName:     evt.LastName,
		TimeHHMM:     evt.TimeHHMM,
		DateMMDDYYYY: evt.DateMMDDYYYY,
	}
	if _, err := r.store.InsertScan(ctx, rec); err != nil {
		return Event{}, "", fmt.Errorf("insert scan: %w", err)
	}

	path, err := r.files.Append(now, evt)
	if err != nil {
		return Event{}, "", fmt.Errorf("append daily csv: %w", err)
	}
	return evt, path, nil
}
