package checklist

// Selection is a cursor over an ordered sequence. It does not own the
// sequence; the current length is supplied on every call, so the same
// Selection can track a sequence that grows or shrinks between calls.
//
// When a selection is present its index is always within [0, length) for the
// length it was last moved against.
type Selection struct {
	index    int
	selected bool
}

// Index returns the selected index and whether a selection is present.
func (s Selection) Index() (int, bool) {
	if !s.selected {
		return 0, false
	}
	return s.index, true
}

// Next advances the cursor by one, wrapping from the last index back to 0.
// With no current selection the first element is selected. A zero length
// leaves the selection untouched.
func (s *Selection) Next(length int) {
	if length == 0 {
		return
	}
	if !s.selected {
		s.index = 0
		s.selected = true
		return
	}
	s.index = (s.index + 1) % length
}

// Previous moves the cursor back by one, wrapping from index 0 to the last
// index. With no current selection the first element is selected. A zero
// length leaves the selection untouched.
func (s *Selection) Previous(length int) {
	if length == 0 {
		return
	}
	if !s.selected {
		s.index = 0
		s.selected = true
		return
	}
	s.index = (s.index - 1 + length) % length
}

// Clear drops the selection unconditionally.
func (s *Selection) Clear() {
	s.index = 0
	s.selected = false
}
