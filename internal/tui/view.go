package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// compose renders the full screen for one frame: the outer titled border,
// the checklist panel, the side panel, and the input box, each confined to
// its computed region. Degenerate regions render nothing.
func (m Model) compose(f Frame) string {
	if m.Width < 2 || m.Height < 2 {
		return ""
	}

	var cols []string
	if list := m.renderListPanel(f.List); list != "" {
		cols = append(cols, list)
	}
	if side := m.renderSidePanel(f.Side); side != "" {
		cols = append(cols, side)
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, cols...)}
	if input := m.renderInputPanel(f.Input); input != "" {
		rows = append(rows, input)
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	interior := grid
	if !f.Interior.Empty() {
		interior = lipgloss.Place(f.Interior.Width, f.Interior.Height,
			lipgloss.Left, lipgloss.Top, grid)
	}

	topLine := lipgloss.NewStyle().
		Foreground(FrameColor).
		Render(boxTop(lipgloss.ThickBorder(), AppTitle, m.Width, true))

	body := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, true, true, true).
		BorderForeground(FrameColor).
		Width(m.Width - 2).
		Height(m.Height - 2).
		Padding(2).
		Render(interior)

	return topLine + "\n" + body
}

// renderListPanel draws the bordered checklist widget with the selected
// entry highlighted.
func (m Model) renderListPanel(r Region) string {
	if r.Empty() {
		return ""
	}

	content := cropLines(m.renderEntries(), r.Height-2)

	topLine := lipgloss.NewStyle().
		Foreground(BorderColor).
		Render(boxTop(lipgloss.NormalBorder(), ListPanelTitle, r.Width, false))

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(BorderColor).
		Width(r.Width - 2).
		Height(r.Height - 2).
		Render(content)

	return topLine + "\n" + body
}

// renderEntries renders every entry's label, one under the other. The
// selected entry gets the highlight style and the marker glyph; with no
// selection all entries render plain. Multi-line titles occupy multiple
// rows.
func (m Model) renderEntries() string {
	selected, hasSelection := m.List.Selected()

	rendered := make([]string, 0, m.List.Len())
	for i, e := range m.List.Entries() {
		if hasSelection && i == selected {
			rendered = append(rendered, SelectedItemStyle.Render(selectedMarker+e.Label()))
			continue
		}
		rendered = append(rendered, ItemStyle.Render(e.Label()))
	}

	return strings.Join(rendered, "\n")
}

// renderSidePanel draws the border-less titled panel. It is composed
// unconditionally by the caller; hiding it degenerates the region to zero
// width and nothing is drawn.
func (m Model) renderSidePanel(r Region) string {
	if r.Empty() {
		return ""
	}

	title := SideTitleStyle.Render(SidePanelTitle)
	if lipgloss.Width(title) > r.Width {
		title = ""
	}

	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Top, title)
}

// renderInputPanel draws the bordered bottom panel with the key binding
// help line inside it.
func (m Model) renderInputPanel(r Region) string {
	if r.Empty() {
		return ""
	}

	content := cropLines(HelpStyle.Render(m.help.View(m.keys)), r.Height-2)

	topLine := lipgloss.NewStyle().
		Foreground(BorderColor).
		Render(boxTop(lipgloss.NormalBorder(), InputBoxTitle, r.Width, false))

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(BorderColor).
		Width(r.Width - 2).
		Height(r.Height - 2).
		Render(content)

	return topLine + "\n" + body
}

// boxTop builds a top border row with the title embedded in it, left
// aligned or centered. Too-narrow rows drop the title rather than overflow.
func boxTop(b lipgloss.Border, title string, width int, center bool) string {
	if width < 2 {
		if width == 1 {
			return b.Top
		}
		return ""
	}

	inner := width - 2
	if lipgloss.Width(title) > inner {
		title = ""
	}

	fill := inner - lipgloss.Width(title)
	left := 0
	if center {
		left = fill / 2
	}

	return b.TopLeft +
		strings.Repeat(b.Top, left) +
		title +
		strings.Repeat(b.Top, fill-left) +
		b.TopRight
}

// cropLines limits s to at most max rows. Scrolling is out of scope, so
// overflow is simply cut.
func cropLines(s string, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}
