package lineedit

// History is a bounded record of submitted command lines, newest
// first, with a browsing cursor. A browse index of 0 means the live
// (unsubmitted) line; 1..Len() index into past entries.
type History struct {
	entries  []string
	capacity int
	browse   int
}

// NewHistory creates a history ring with the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stored lines, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Push records a submitted line. Empty lines and lines equal to the
// most recent entry are not stored. The oldest entry is evicted beyond
// capacity.
func (h *History) Push(line string) {
	if line == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[0] == line {
		return
	}
	h.entries = append([]string{line}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Reset leaves browsing mode without touching the editor.
func (h *History) Reset() {
	h.browse = 0
}

// RecallOlder loads the next older entry into the editor, cursor at
// the end. No-op when already at the oldest entry.
func (h *History) RecallOlder(e *Editor) {
	if h.browse >= len(h.entries) {
		return
	}
	h.browse++
	e.Set(h.entries[h.browse-1])
}

// RecallNewer loads the next newer entry into the editor, or clears it
// when browsing returns to the live line. No-op when not browsing.
func (h *History) RecallNewer(e *Editor) {
	if h.browse == 0 {
		return
	}
	h.browse--
	if h.browse == 0 {
		e.Clear()
		return
	}
	e.Set(h.entries[h.browse-1])
}
