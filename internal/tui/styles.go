package tui

import "github.com/charmbracelet/lipgloss"

// Panel titles
const (
	AppTitle       = " ticklist "
	ListPanelTitle = "List"
	SidePanelTitle = "Projects"
	InputBoxTitle  = "Text"
)

// Color palette
var (
	FrameColor     = lipgloss.Color("#7D56F4") // Purple - outer frame
	BorderColor    = lipgloss.Color("#626262") // Gray - panel borders
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
	SubtleColor    = lipgloss.Color("#626262") // Gray - secondary info
	HighlightColor = lipgloss.Color("#43BF6D") // Green - selected entry
)

// Common styles
var (
	// Checklist entry (unselected)
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Checklist entry (selected): distinct background, bold, marker prefix
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(HighlightColor).
				Bold(true)

	// Side panel title
	SideTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(lipgloss.Color("#000000")).
			Bold(true)

	// Help text inside the input box
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// selectedMarker is the glyph prefixed to the highlighted entry.
const selectedMarker = ">> "
