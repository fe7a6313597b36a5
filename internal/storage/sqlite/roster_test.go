package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/louisbranch/rollcall/internal/roster"
	"github.com/louisbranch/rollcall/internal/storage"
)

func TestReplaceRosterRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	importedAt := time.Date(2026, time.March, 4, 9, 30, 15, 0, time.UTC)
	stamp := storage.ImportStamp{
		RunID:      "run-1",
		SourceFile: "roster.csv",
		ImportedAt: importedAt,
	}
	entries := []roster.Entry{
		{TrackingID: 100, FirstName: "Amy", LastName: "Brown"},
		{TrackingID: 101, FirstName: "Jane", LastName: "Smith"},
	}
	if err := store.ReplaceRoster(ctx, entries, stamp); err != nil {
		t.Fatalf("replace roster: %v", err)
	}

	got, err := store.LookupStudent(ctx, 101)
	if err != nil {
		t.Fatalf("lookup student: %v", err)
	}
	if got.FirstName != "Jane" || got.LastName != "Smith" || got.TrackingID != 101 {
		t.Fatalf("student = %+v, want Jane Smith 101", got)
	}
	if got.SourceFile != "roster.csv" {
		t.Errorf("source_file = %q, want roster.csv", got.SourceFile)
	}
	if !got.ImportedAt.Equal(importedAt) {
		t.Errorf("imported_at = %v, want %v", got.ImportedAt, importedAt)
	}
}

func TestReplaceRosterDiscardsPrevious(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	first := []roster.Entry{{TrackingID: 100, FirstName: "Amy", LastName: "Brown"}}
	if err := store.ReplaceRoster(ctx, first, storage.ImportStamp{SourceFile: "a.csv"}); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	second := []roster.Entry{{TrackingID: 200, FirstName: "Jane", LastName: "Smith"}}
	if err := store.ReplaceRoster(ctx, second, storage.ImportStamp{SourceFile: "b.csv"}); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	if _, err := store.LookupStudent(ctx, 100); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("lookup replaced student error = %v, want ErrNotFound", err)
	}
	got, err := store.LookupStudent(ctx, 200)
	if err != nil {
		t.Fatalf("lookup student: %v", err)
	}
	if got.SourceFile != "b.csv" {
		t.Errorf("source_file = %q, want b.csv", got.SourceFile)
	}
}

func TestAppendRosterAddsToExisting(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	base := []roster.Entry{{TrackingID: 100, FirstName: "Amy", LastName: "Brown"}}
	if err := store.ReplaceRoster(ctx, base, storage.ImportStamp{SourceFile: "a.csv"}); err != nil {
		t.Fatalf("replace roster: %v", err)
	}
	extra := []roster.Entry{{TrackingID: 101, FirstName: "Jane", LastName: "Smith"}}
	if err := store.AppendRoster(ctx, extra, storage.ImportStamp{SourceFile: "b.csv"}); err != nil {
		t.Fatalf("append roster: %v", err)
	}

	for _, id := range []int64{100, 101} {
		if _, err := store.LookupStudent(ctx, id); err != nil {
			t.Fatalf("lookup student %d: %v", id, err)
		}
	}
}

func TestAppendRosterCreatesTableWhenMissing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	entries := []roster.Entry{{TrackingID: 100, FirstName: "Amy", LastName: "Brown"}}
	if err := store.AppendRoster(ctx, entries, storage.ImportStamp{SourceFile: "a.csv"}); err != nil {
		t.Fatalf("append into fresh store: %v", err)
	}

	if _, err := store.LookupStudent(ctx, 100); err != nil {
		t.Fatalf("lookup student: %v", err)
	}
}

func TestAppendRosterConflictWritesNothing(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	base := []roster.Entry{
		{TrackingID: 100, FirstName: "Amy", LastName: "Brown"},
		{TrackingID: 101, FirstName: "Jane", LastName: "Smith"},
	}
	if err := store.ReplaceRoster(ctx, base, storage.ImportStamp{SourceFile: "a.csv"}); err != nil {
		t.Fatalf("replace roster: %v", err)
	}

	colliding := []roster.Entry{
		{TrackingID: 150, FirstName: "Pat", LastName: "Jones"},
		{TrackingID: 101, FirstName: "Sam", LastName: "Wright"},
	}
	err := store.AppendRoster(ctx, colliding, storage.ImportStamp{SourceFile: "b.csv"})
	if !errors.Is(err, storage.ErrTrackingIDConflict) {
		t.Fatalf("append error = %v, want ErrTrackingIDConflict", err)
	}

	if _, err := store.LookupStudent(ctx, 150); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("lookup 150 after failed append error = %v, want ErrNotFound", err)
	}
	got, err := store.LookupStudent(ctx, 101)
	if err != nil {
		t.Fatalf("lookup student: %v", err)
	}
	if got.FirstName != "Jane" {
		t.Errorf("first_name = %q, want original Jane", got.FirstName)
	}
}

func TestLookupStudentNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	entries := []roster.Entry{{TrackingID: 100, FirstName: "Amy", LastName: "Brown"}}
	if err := store.ReplaceRoster(ctx, entries, storage.ImportStamp{SourceFile: "a.csv"}); err != nil {
		t.Fatalf("replace roster: %v", err)
	}

	if _, err := store.LookupStudent(ctx, 999); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("lookup error = %v, want ErrNotFound", err)
	}
}

func TestLookupStudentWithoutRosterTable(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.LookupStudent(context.Background(), 100)
	if err == nil {
		t.Fatal("expected error when roster table is missing")
	}
	if errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("lookup error = %v, want a table error rather than ErrNotFound", err)
	}
}

func TestReplaceRosterCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.ReplaceRoster(ctx, nil, storage.ImportStamp{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("replace error = %v, want context.Canceled", err)
	}
}
