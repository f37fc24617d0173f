// Package tui implements the terminal user interface for the ticklist
// checklist browser.
//
// Built on the Bubble Tea framework, it follows the Elm architecture: all
// state lives in Model, Update is the single place state changes, and View
// is a pure function of the model. The runtime owns the terminal (raw mode,
// alternate screen, mouse capture) and restores it on every exit path,
// including errors.
//
// # Screen layout
//
// The screen is an outer thick-bordered frame with a centered title. Inside
// a 3-cell margin the interior splits into three panels:
//
//   - List (top left): the checklist, selected entry highlighted
//   - Projects (top right): border-less titled side panel, hidden via End
//   - Text (bottom): bordered input box with the help line, hidden via Home
//
// Geometry is computed per frame by ComputeLayout, a pure function of the
// terminal size and the two panel toggles. Hiding a panel degenerates its
// region to zero size and its neighbour absorbs the space.
//
// # Key bindings
//
// Esc quits; End and Home toggle the side panel and input box; Down and Up
// move the selection with wrap-around; Left deselects. Bindings are
// declared with bubbles/key and surfaced through bubbles/help in the input
// box. Mouse events are captured by the program but ignored.
package tui
