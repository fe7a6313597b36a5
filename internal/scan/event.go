package scan

import (
	"strconv"
	"strings"
)

// Timestamp layouts shared by the scan log, the daily CSV, and the
// on-screen history.
const (
	TimeLayout = "15:04"
	DateLayout = "01:02:2006"
)

// Event is one recorded attendance scan.
type Event struct {
	TrackingID   int64
	FirstName    string
	LastName     string
	TimeHHMM     string
	DateMMDDYYYY string
}

// NormalizeScan strips every non-digit character from raw and parses what
// remains as a tracking id. ok is false when no digits remain or the
// digits do not fit a signed 64-bit integer.
func NormalizeScan(raw string) (id int64, ok bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
