package roster

import (
	"fmt"
	"sort"
)

// FirstTrackingID is assigned to the first entry of a sorted roster;
// later entries count up from it.
const FirstTrackingID = 100

// Mode selects how raw name columns map onto first and last names.
type Mode string

const (
	// ModeCombined reads a single column holding "Last, First M." values.
	ModeCombined Mode = "combined"
	// ModeSeparate reads distinct first-name and last-name columns.
	ModeSeparate Mode = "separate"
)

// Valid reports whether m names a known input layout.
func (m Mode) Valid() bool {
	return m == ModeCombined || m == ModeSeparate
}

// Columns names the input columns consulted per mode. Combined applies to
// ModeCombined; First and Last apply to ModeSeparate.
type Columns struct {
	Combined string
	First    string
	Last     string
}

// Entry is one roster member with an assigned tracking id.
type Entry struct {
	TrackingID int64
	FirstName  string
	LastName   string
}

// ColumnNotFoundError reports a configured column missing from the input
// header.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in input", e.Column)
}

// Build normalizes the raw table into roster entries. Rows whose first and
// last name both normalize to empty are dropped, the rest are stably sorted
// by first then last name, and tracking ids are assigned by position
// starting at FirstTrackingID.
func Build(table Table, mode Mode, columns Columns) ([]Entry, error) {
	entries, err := extractNames(table, mode, columns)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.FirstName == "" && e.LastName == "" {
			continue
		}
		kept = append(kept, e)
	}
	entries = kept

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].FirstName != entries[j].FirstName {
			return entries[i].FirstName < entries[j].FirstName
		}
		return entries[i].LastName < entries[j].LastName
	})
	for i := range entries {
		entries[i].TrackingID = FirstTrackingID + int64(i)
	}
	return entries, nil
}

func extractNames(table Table, mode Mode, columns Columns) ([]Entry, error) {
	switch mode {
	case ModeCombined:
		idx := table.column(columns.Combined)
		if idx < 0 {
			return nil, &ColumnNotFoundError{Column: columns.Combined}
		}
		entries := make([]Entry, 0, len(table.Records))
		for _, rec := range table.Records {
			first, last := ParseFullName(cell(rec, idx))
			entries = append(entries, Entry{FirstName: first, LastName: last})
		}
		return entries, nil
	case ModeSeparate:
		firstIdx := table.column(columns.First)
		if firstIdx < 0 {
			return nil, &ColumnNotFoundError{Column: columns.First}
		}
		lastIdx := table.column(columns.Last)
		if lastIdx < 0 {
			return nil, &ColumnNotFoundError{Column: columns.Last}
		}
		entries := make([]Entry, 0, len(table.Records))
		for _, rec := range table.Records {
			entries = append(entries, Entry{
				FirstName: CleanFirstName(cell(rec, firstIdx)),
				LastName:  TitleCase(cell(rec, lastIdx)),
			})
		}
		return entries, nil
	}
	return nil, fmt.Errorf("unknown roster mode %q", mode)
}
