package scan

import "testing"

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(3)
	for _, id := range []int64{100, 101, 102} {
		h.Push(Event{TrackingID: id})
	}

	events := h.Events()
	if len(events) != 3 {
		t.Fatalf("history holds %d events, want 3", len(events))
	}
	for i, want := range []int64{102, 101, 100} {
		if events[i].TrackingID != want {
			t.Errorf("event %d tracking id = %d, want %d", i, events[i].TrackingID, want)
		}
	}
}

func TestHistoryDiscardsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, id := range []int64{100, 101, 102, 103} {
		h.Push(Event{TrackingID: id})
	}

	events := h.Events()
	if len(events) != 3 {
		t.Fatalf("history holds %d events, want 3", len(events))
	}
	for i, want := range []int64{103, 102, 101} {
		if events[i].TrackingID != want {
			t.Errorf("event %d tracking id = %d, want %d", i, events[i].TrackingID, want)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(3)
	if events := h.Events(); len(events) != 0 {
		t.Fatalf("fresh history holds %d events, want 0", len(events))
	}
}

func TestHistoryZeroCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(Event{TrackingID: 100})
	if events := h.Events(); len(events) != 0 {
		t.Fatalf("zero-capacity history holds %d events, want 0", len(events))
	}
}

func TestHistoryEventsIsACopy(t *testing.T) {
	h := NewHistory(3)
	h.Push(Event{TrackingID: 100})

	events := h.Events()
	events[0].TrackingID = 999

	if got := h.Events()[0].TrackingID; got != 100 {
		t.Fatalf("internal event mutated to %d, want 100", got)
	}
}
