package tui

// margin is the fixed number of cells reserved on every side of the
// terminal for the outer decorative frame.
const margin = 3

// Percentage splits for the optional panels. The remainder of each split
// goes to the side panel and the input box respectively; hiding a panel
// gives its share back to the neighbour.
const (
	topHeightPct = 90
	listWidthPct = 80
)

// Region is a rectangle in terminal cells. A zero Width or Height marks a
// degenerate (hidden) region; the composer renders nothing for it.
type Region struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the region has no drawable area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Frame is the set of panel regions computed for one render pass.
type Frame struct {
	// Interior is the margined area all panels are carved out of.
	Interior Region
	// List holds the checklist widget (top left).
	List Region
	// Side holds the side panel (top right); zero width when hidden.
	Side Region
	// Input holds the input box (bottom); zero height when hidden.
	Input Region
}

// ComputeLayout derives panel geometry from the terminal size and the
// current toggles. It is a pure function: identical inputs always produce
// the identical frame.
//
// The interior (terminal minus a 3-cell margin on every side) is first split
// vertically, the top part taking 90% when the input box is shown and 100%
// otherwise. The top part is then split horizontally, the list taking 80%
// when the side panel is shown and 100% otherwise. Terminals smaller than
// the margins clamp to zero-sized regions rather than going negative.
func ComputeLayout(width, height int, t Toggles) Frame {
	iw := clamp(width - 2*margin)
	ih := clamp(height - 2*margin)

	topH := ih
	if t.ShowInputBox {
		topH = ih * topHeightPct / 100
	}

	listW := iw
	if t.ShowSidePanel {
		listW = iw * listWidthPct / 100
	}

	return Frame{
		Interior: Region{X: margin, Y: margin, Width: iw, Height: ih},
		List:     Region{X: margin, Y: margin, Width: listW, Height: topH},
		Side:     Region{X: margin + listW, Y: margin, Width: iw - listW, Height: topH},
		Input:    Region{X: margin, Y: margin + topH, Width: iw, Height: ih - topH},
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
