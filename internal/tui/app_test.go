package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/ticklist/internal/checklist"
)

func newTestModel() Model {
	m := NewModel(checklist.Seed(), DefaultToggles())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, keyType tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model), cmd
}

func TestWindowSizeIsStored(t *testing.T) {
	m := newTestModel()
	if m.Width != 100 || m.Height != 40 {
		t.Fatalf("size = %dx%d, want 100x40", m.Width, m.Height)
	}
}

func TestEscQuits(t *testing.T) {
	m := newTestModel()
	_, cmd := press(t, m, tea.KeyEsc)
	if cmd == nil {
		t.Fatal("Esc produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("Esc command = %v, want tea.Quit", msg)
	}
}

func TestEndTogglesSidePanel(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, tea.KeyEnd)
	if m.Toggles.ShowSidePanel {
		t.Fatal("first End should hide the side panel")
	}
	if !m.Toggles.ShowInputBox {
		t.Fatal("End must not touch the input box flag")
	}

	m, _ = press(t, m, tea.KeyEnd)
	if !m.Toggles.ShowSidePanel {
		t.Fatal("second End should show the side panel again")
	}
}

func TestHomeTogglesInputBox(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, tea.KeyHome)
	if m.Toggles.ShowInputBox {
		t.Fatal("first Home should hide the input box")
	}
	if !m.Toggles.ShowSidePanel {
		t.Fatal("Home must not touch the side panel flag")
	}

	m, _ = press(t, m, tea.KeyHome)
	if !m.Toggles.ShowInputBox {
		t.Fatal("second Home should show the input box again")
	}
}

// Down three times lands on index 2, Up steps back to 1, Left deselects,
// and Down again starts over at 0.
func TestSelectionKeyScenario(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	m, _ = press(t, m, tea.KeyDown)
	if idx, ok := m.List.Selected(); !ok || idx != 2 {
		t.Fatalf("after Down x3: selection = (%d, %v), want (2, true)", idx, ok)
	}

	m, _ = press(t, m, tea.KeyUp)
	if idx, _ := m.List.Selected(); idx != 1 {
		t.Fatalf("after Up: selection = %d, want 1", idx)
	}

	m, _ = press(t, m, tea.KeyLeft)
	if _, ok := m.List.Selected(); ok {
		t.Fatal("after Left: selection should be none")
	}

	m, _ = press(t, m, tea.KeyDown)
	if idx, _ := m.List.Selected(); idx != 0 {
		t.Fatalf("after Down from none: selection = %d, want 0", idx)
	}
}

func TestUnboundKeysAreIgnored(t *testing.T) {
	m := newTestModel()

	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRight},
	} {
		updated, cmd := m.Update(msg)
		m = updated.(Model)
		if cmd != nil {
			t.Fatalf("unbound key %v produced a command", msg)
		}
	}

	if _, ok := m.List.Selected(); ok {
		t.Error("unbound keys changed the selection")
	}
	if m.Toggles != DefaultToggles() {
		t.Error("unbound keys changed the toggles")
	}
}

// Mouse capture is enabled on the program, but mouse events must not reach
// any state.
func TestMouseEventsAreIgnored(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)
	if cmd != nil {
		t.Fatal("mouse event produced a command")
	}
	if _, ok := m.List.Selected(); ok {
		t.Error("mouse event changed the selection")
	}
	if m.Toggles != DefaultToggles() {
		t.Error("mouse event changed the toggles")
	}
}
