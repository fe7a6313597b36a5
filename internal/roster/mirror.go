package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteMirror writes entries to path as a CSV copy of the stored roster,
// one row per entry under a first_name,last_name,tracking_id header. The
// parent directory is created when missing and an existing file is
// truncated.
func WriteMirror(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create roster mirror: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"first_name", "last_name", "tracking_id"}); err != nil {
		f.Close()
		return fmt.Errorf("write mirror header: %w", err)
	}
	for _, e := range entries {
		row := []string{e.FirstName, e.LastName, strconv.FormatInt(e.TrackingID, 10)}
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write mirror row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush roster mirror: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close roster mirror: %w", err)
	}
	return nil
}
