package checklist

import "fmt"

// ErrOutOfRange is returned when a list operation names a position outside
// the list. It never occurs through the key bindings; hitting it indicates a
// caller bug rather than a recoverable runtime condition.
var ErrOutOfRange = fmt.Errorf("checklist: position out of range")

// Entry is a single checklist item. Title is fixed once created; Done may be
// toggled through the data API (no key is currently bound to it).
type Entry struct {
	Done  bool
	Title string
}

// Label renders the entry for display: a two-character status marker
// followed by the title. A done entry renders a blank marker and a pending
// entry renders "x". Embedded newlines in the title pass through verbatim.
func (e Entry) Label() string {
	marker := "x"
	if e.Done {
		marker = " "
	}
	return fmt.Sprintf("[%s] %s", marker, e.Title)
}

// List is an ordered sequence of entries with a selection cursor over it.
// The zero value is an empty list with no selection.
type List struct {
	entries []Entry
	sel     Selection
}

// New creates a list over the given entries with no selection.
func New(entries []Entry) *List {
	return &List{entries: entries}
}

// Seed returns the fixed startup list.
func Seed() *List {
	return New([]Entry{
		{Done: false, Title: "Hello world"},
		{Done: true, Title: "Hello again"},
		{Done: true, Title: "Bye!!"},
		{Done: false, Title: "A line here..."},
		{Done: true, Title: "What should i do?? \nthis?"},
		{Done: true, Title: "Uno\nDos\nTres!"},
	})
}

// Entries returns the backing slice. Callers must not reorder or resize it;
// use Insert and RemoveAt for structural changes so the selection stays
// consistent.
func (l *List) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Selected returns the selected index and whether a selection is present.
func (l *List) Selected() (int, bool) {
	return l.sel.Index()
}

// Insert appends an entry at the tail. Tail insertion cannot invalidate the
// selection, so no adjustment is needed.
func (l *List) Insert(e Entry) {
	l.entries = append(l.entries, e)
}

// RemoveAt deletes the entry at pos. Removing the selected entry clears the
// selection; a selection past pos is decremented so it keeps pointing at the
// same logical entry; a selection before pos is untouched.
func (l *List) RemoveAt(pos int) error {
	if pos < 0 || pos >= len(l.entries) {
		return fmt.Errorf("remove at %d of %d: %w", pos, len(l.entries), ErrOutOfRange)
	}
	l.entries = append(l.entries[:pos], l.entries[pos+1:]...)
	if idx, ok := l.sel.Index(); ok {
		switch {
		case idx == pos:
			l.sel.Clear()
		case idx > pos:
			l.sel.index = idx - 1
		}
	}
	return nil
}

// SelectNext moves the selection forward with wrap-around.
func (l *List) SelectNext() {
	l.sel.Next(len(l.entries))
}

// SelectPrevious moves the selection backward with wrap-around.
func (l *List) SelectPrevious() {
	l.sel.Previous(len(l.entries))
}

// ClearSelection drops the selection.
func (l *List) ClearSelection() {
	l.sel.Clear()
}
