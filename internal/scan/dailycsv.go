package scan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Folder and file name layouts for the daily CSV tree, e.g. 08_2026 and
// 08_28_2026.csv.
const (
	monthFolderLayout = "01_2006"
	dayFileLayout     = "01_02_2006"
)

var dayFileHeader = []string{"tracking_id", "first_name", "last_name", "time_hhmm", "date_mmddyyyy"}

// DayFile appends attendance rows to per-day CSV files laid out as
// <root>/<MM_YYYY>/<MM_DD_YYYY>.csv.
type DayFile struct {
	root string
}

// NewDayFile returns a day file writer rooted at dir.
func NewDayFile(dir string) *DayFile {
	return &DayFile{root: dir}
}

// Path returns the day file path for the instant at.
func (d *DayFile) Path(at time.Time) string {
	return filepath.Join(d.root, at.Format(monthFolderLayout), at.Format(dayFileLayout)+".csv")
}

// Append writes one attendance row to the day file for the instant at,
// creating the month folder when missing. The header row is written only
// when the file is new. Returns the path appended to.
func (d *DayFile) Append(at time.Time, evt Event) (string, error) {
	path := d.Path(at)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create month folder: %w", err)
	}

	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("open day file: %w", err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(dayFileHeader); err != nil {
			f.Close()
			return "", fmt.Errorf("write day file header: %w", err)
		}
	}
	row := []string{
		strconv.FormatInt(evt.TrackingID, 10),
		evt.FirstName,
		evt.LastName,
		evt.TimeHHMM,
		evt.DateMMDDYYYY,
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return "", fmt.Errorf("write day file row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flush day file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close day file: %w", err)
	}
	return path, nil
}
