package checklist

import (
	"errors"
	"testing"
)

func TestEntryLabel(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"pending shows x", Entry{Done: false, Title: "Hello world"}, "[x] Hello world"},
		{"done shows blank", Entry{Done: true, Title: "Hello again"}, "[ ] Hello again"},
		{"newlines pass through", Entry{Done: true, Title: "Uno\nDos\nTres!"}, "[ ] Uno\nDos\nTres!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	l := Seed()
	if l.Len() != 6 {
		t.Fatalf("Seed() has %d entries, want 6", l.Len())
	}
	if _, ok := l.Selected(); ok {
		t.Error("Seed() should start with no selection")
	}
	if l.Entries()[0].Title != "Hello world" {
		t.Errorf("first entry = %q, want %q", l.Entries()[0].Title, "Hello world")
	}
}

func TestInsertAppendsAndKeepsSelection(t *testing.T) {
	l := New([]Entry{{Title: "a"}, {Title: "b"}})
	l.SelectNext()
	l.SelectNext() // index 1

	l.Insert(Entry{Title: "c"})

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if l.Entries()[2].Title != "c" {
		t.Errorf("tail entry = %q, want %q", l.Entries()[2].Title, "c")
	}
	if idx, ok := l.Selected(); !ok || idx != 1 {
		t.Errorf("selection after Insert = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	l := New([]Entry{{Title: "a"}})
	if err := l.RemoveAt(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveAt(1) error = %v, want ErrOutOfRange", err)
	}
	if err := l.RemoveAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("RemoveAt(-1) error = %v, want ErrOutOfRange", err)
	}
	if l.Len() != 1 {
		t.Errorf("failed RemoveAt changed length to %d", l.Len())
	}
}

func TestRemoveAtSelectionPolicy(t *testing.T) {
	tests := []struct {
		name      string
		selected  int
		remove    int
		wantIdx   int
		wantClear bool
	}{
		{"removing selected clears", 2, 2, 0, true},
		{"removing before decrements", 2, 0, 1, false},
		{"removing after is untouched", 1, 3, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]Entry{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}})
			for i := 0; i <= tt.selected; i++ {
				l.SelectNext()
			}

			if err := l.RemoveAt(tt.remove); err != nil {
				t.Fatalf("RemoveAt(%d): %v", tt.remove, err)
			}
			if l.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", l.Len())
			}

			idx, ok := l.Selected()
			if tt.wantClear {
				if ok {
					t.Fatalf("selection = %d, want none", idx)
				}
				return
			}
			if !ok || idx != tt.wantIdx {
				t.Errorf("selection = (%d, %v), want (%d, true)", idx, ok, tt.wantIdx)
			}
		})
	}
}

// A full browsing pass: six entries, three steps forward, one back, a
// deselect, then stepping forward again lands on the first entry.
func TestListNavigationScenario(t *testing.T) {
	l := Seed()

	l.SelectNext()
	l.SelectNext()
	l.SelectNext()
	if idx, _ := l.Selected(); idx != 2 {
		t.Fatalf("after three SelectNext: index = %d, want 2", idx)
	}

	l.SelectPrevious()
	if idx, _ := l.Selected(); idx != 1 {
		t.Fatalf("after SelectPrevious: index = %d, want 1", idx)
	}

	l.ClearSelection()
	if _, ok := l.Selected(); ok {
		t.Fatal("after ClearSelection: selection still present")
	}

	l.SelectNext()
	if idx, _ := l.Selected(); idx != 0 {
		t.Fatalf("after SelectNext from none: index = %d, want 0", idx)
	}
}

func TestEmptyListNavigation(t *testing.T) {
	l := New(nil)
	l.SelectNext()
	l.SelectPrevious()
	if _, ok := l.Selected(); ok {
		t.Error("navigation on empty list created a selection")
	}
}
