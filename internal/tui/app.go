package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/ticklist/internal/checklist"
	"github.com/muurk/ticklist/internal/logging"
)

// Model is the top-level Bubble Tea model for the checklist browser. It owns
// all mutable state for the run: the checklist, the panel toggles, and the
// last reported terminal size. State is mutated only inside Update.
type Model struct {
	List    *checklist.List
	Toggles Toggles

	Width  int
	Height int

	keys keyMap
	help help.Model
}

// NewModel creates a browser over the given list with the given initial
// panel visibility.
func NewModel(list *checklist.List, toggles Toggles) Model {
	return Model{
		List:    list,
		Toggles: toggles,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model. The browser has no startup commands; the first
// WindowSizeMsg from the runtime provides the initial terminal size.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key presses are dispatched in fixed priority
// order, first match wins; unmatched keys are no-ops. Mouse events arrive
// because mouse capture is enabled on the program, and are deliberately
// ignored here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		logging.Debug("terminal resized",
			zap.Int("width", msg.Width),
			zap.Int("height", msg.Height),
		)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Info("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleSide):
		m.Toggles.ToggleSidePanel()
		logging.Debug("side panel toggled", zap.Bool("visible", m.Toggles.ShowSidePanel))

	case key.Matches(msg, m.keys.ToggleInput):
		m.Toggles.ToggleInputBox()
		logging.Debug("input box toggled", zap.Bool("visible", m.Toggles.ShowInputBox))

	case key.Matches(msg, m.keys.Down):
		m.List.SelectNext()

	case key.Matches(msg, m.keys.Up):
		m.List.SelectPrevious()

	case key.Matches(msg, m.keys.Deselect):
		m.List.ClearSelection()
	}

	return m, nil
}

// View implements tea.Model. Composition is pure: it reads the model and
// produces the frame string, never mutating state.
func (m Model) View() string {
	frame := ComputeLayout(m.Width, m.Height, m.Toggles)
	return m.compose(frame)
}
