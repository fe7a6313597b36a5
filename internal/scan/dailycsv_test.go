package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDayFileAppendCreatesMonthFolderAndHeader(t *testing.T) {
	root := t.TempDir()
	d := NewDayFile(root)
	at := time.Date(2026, time.August, 28, 9, 30, 0, 0, time.UTC)
	evt := Event{TrackingID: 100, FirstName: "Amy", LastName: "Brown", TimeHHMM: "09:30", DateMMDDYYYY: "08:28:2026"}

	path, err := d.Append(at, evt)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	want := filepath.Join(root, "08_2026", "08_28_2026.csv")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read day file: %v", err)
	}
	wantContents := "tracking_id,first_name,last_name,time_hhmm,date_mmddyyyy\n100,Amy,Brown,09:30,08:28:2026\n"
	if string(raw) != wantContents {
		t.Errorf("day file = %q, want %q", raw, wantContents)
	}
}

func TestDayFileAppendWritesHeaderOnce(t *testing.T) {
	root := t.TempDir()
	d := NewDayFile(root)
	at := time.Date(2026, time.August, 28, 9, 30, 0, 0, time.UTC)

	if _, err := d.Append(at, Event{TrackingID: 100, FirstName: "Amy", LastName: "Brown", TimeHHMM: "09:30", DateMMDDYYYY: "08:28:2026"}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	path, err := d.Append(at.Add(time.Minute), Event{TrackingID: 101, FirstName: "Jane", LastName: "Smith", TimeHHMM: "09:31", DateMMDDYYYY: "08:28:2026"})
	if err != nil {
		t.Fatalf("second append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read day file: %v", err)
	}
	want := "tracking_id,first_name,last_name,time_hhmm,date_mmddyyyy\n" +
		"100,Amy,Brown,09:30,08:28:2026\n" +
		"101,Jane,Smith,09:31,08:28:2026\n"
	if string(raw) != want {
		t.Errorf("day file = %q, want %q", raw, want)
	}
}

func TestDayFileSplitsByDay(t *testing.T) {
	root := t.TempDir()
	d := NewDayFile(root)

	first, err := d.Append(time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC), Event{TrackingID: 100})
	if err != nil {
		t.Fatalf("append day one: %v", err)
	}
	second, err := d.Append(time.Date(2026, time.August, 29, 0, 1, 0, 0, time.UTC), Event{TrackingID: 100})
	if err != nil {
		t.Fatalf("append day two: %v", err)
	}

	if first == second {
		t.Fatalf("both days wrote to %q, want distinct files", first)
	}
	if filepath.Dir(first) != filepath.Dir(second) {
		t.Errorf("same month split across folders %q and %q", filepath.Dir(first), filepath.Dir(second))
	}
}

func TestDayFileSplitsByMonth(t *testing.T) {
	root := t.TempDir()
	d := NewDayFile(root)

	august, err := d.Append(time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC), Event{TrackingID: 100})
	if err != nil {
		t.Fatalf("append august: %v", err)
	}
	september, err := d.Append(time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC), Event{TrackingID: 100})
	if err != nil {
		t.Fatalf("append september: %v", err)
	}

	if filepath.Dir(august) == filepath.Dir(september) {
		t.Fatalf("different months share folder %q", filepath.Dir(august))
	}
	if got, want := filepath.Base(filepath.Dir(september)), "09_2026"; got != want {
		t.Errorf("september folder = %q, want %q", got, want)
	}
}
