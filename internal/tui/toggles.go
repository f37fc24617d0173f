package tui

// Toggles controls which optional panels are visible. Both panels are shown
// at startup. The two flags are independent; each key binding flips exactly
// one of them.
type Toggles struct {
	ShowSidePanel bool
	ShowInputBox  bool
}

// DefaultToggles returns the startup state with both panels visible.
func DefaultToggles() Toggles {
	return Toggles{ShowSidePanel: true, ShowInputBox: true}
}

// ToggleSidePanel flips side panel visibility.
func (t *Toggles) ToggleSidePanel() {
	t.ShowSidePanel = !t.ShowSidePanel
}

// ToggleInputBox flips input box visibility.
func (t *Toggles) ToggleInputBox() {
	t.ShowInputBox = !t.ShowInputBox
}
