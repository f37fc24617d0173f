// Package checklist holds the core data model for the ticklist browser: an
// ordered list of checklist entries and a wrap-around selection cursor over
// it.
//
// # Selection semantics
//
// Selection is a cursor over a sequence whose length is passed in at call
// time. Movement wraps at both ends: advancing past the last entry returns
// to the first, and moving back from the first lands on the last. With no
// current selection, either movement selects the first entry. All cursor
// operations are total; moving over an empty sequence is a no-op.
//
// # Structural changes
//
// Insert appends at the tail only, which never disturbs the selection.
// RemoveAt applies a fixed policy: removing the selected entry clears the
// selection (the simplest way to avoid a dangling index), removing an entry
// before the selection shifts the selection down by one, and removing one
// after it leaves the selection alone.
//
// The package has no I/O and is safe to exercise from tests without any
// terminal present.
package checklist
