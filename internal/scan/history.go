package scan

// DefaultHistorySize is how many recent scans the session keeps on screen.
const DefaultHistorySize = 3

// History keeps the most recent scan events, newest first.
type History struct {
	capacity int
	events   []Event
}

// NewHistory returns a history holding at most capacity events.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{capacity: capacity}
}

// Push adds evt as the newest entry, discarding the oldest entry beyond
// the capacity.
func (h *History) Push(evt Event) {
	if h.capacity == 0 {
		return
	}
	h.events = append([]Event{evt}, h.events...)
	if len(h.events) > h.capacity {
		h.events = h.events[:h.capacity]
	}
}

// Events returns a copy of the retained events, newest first.
func (h *History) Events() []Event {
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}
