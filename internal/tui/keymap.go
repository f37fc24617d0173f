package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the browse screen key bindings. Declaration order matches
// dispatch priority in Update.
type keyMap struct {
	Quit        key.Binding
	ToggleSide  key.Binding
	ToggleInput key.Binding
	Down        key.Binding
	Up          key.Binding
	Deselect    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Deselect, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.Deselect},
		{k.ToggleSide, k.ToggleInput, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ToggleSide: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "side panel"),
		),
		ToggleInput: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "input box"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "deselect"),
		),
	}
}
