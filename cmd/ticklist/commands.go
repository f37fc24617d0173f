package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/ticklist/internal/checklist"
	"github.com/muurk/ticklist/internal/config"
	"github.com/muurk/ticklist/internal/logging"
	"github.com/muurk/ticklist/internal/tui"
)

var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging verbosity (debug, info, warn, error); default silent")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(showCmd)
}

// browseCmd launches the interactive checklist browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Launch the interactive checklist browser",
	Long: `Launch the full-screen checklist browser.

The browser shows the checklist inside a bordered layout with an optional
side panel and input box. Navigation wraps around at both ends of the list.

Key bindings:
  Down/Up  move the selection
  Left     clear the selection
  End      toggle the side panel
  Home     toggle the input box
  Esc      quit`,
	Example: `  # Launch the browser
  ticklist browse
  # Or simply (browse is default):
  ticklist

  # Launch with debug logging to the config directory
  ticklist browse --log-level debug`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	// Flag wins over the preference file; the env var wins over both
	// inside logging.Initialize.
	level := logLevel
	if level == "" {
		level = prefs.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	model := tui.NewModel(checklist.Seed(), tui.Toggles{
		ShowSidePanel: prefs.ShowSidePanel,
		ShowInputBox:  prefs.ShowInputBox,
	})

	logging.Info("browser starting")

	// The program owns the terminal for the whole run: alternate screen
	// and mouse capture are acquired here and restored on every exit
	// path, including error returns.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser error: %w", err)
	}

	// Remember the panel visibility for the next run. A failed save is not
	// worth a non-zero exit after a clean browsing session.
	if m, ok := final.(tui.Model); ok && rememberToggles(prefs, m.Toggles) {
		if err := prefs.Save(); err != nil {
			logging.Warn("failed to save preferences", zap.Error(err))
		}
	}

	logging.Info("browser exited")
	return nil
}

// rememberToggles copies the final panel visibility into the preferences,
// reporting whether anything changed.
func rememberToggles(prefs *config.Preferences, t tui.Toggles) bool {
	if prefs.ShowSidePanel == t.ShowSidePanel && prefs.ShowInputBox == t.ShowInputBox {
		return false
	}
	prefs.ShowSidePanel = t.ShowSidePanel
	prefs.ShowInputBox = t.ShowInputBox
	return true
}

// showCmd prints the checklist without entering the TUI
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the checklist",
	Long: `Print the checklist to stdout without entering the browser.

Entries are rendered with their status marker. Lines longer than the
terminal are wrapped.`,
	Example: `  # Print the checklist
  ticklist show`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	list := checklist.Seed()

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	done := 0
	for _, e := range list.Entries() {
		if e.Done {
			done++
		}
		for _, line := range strings.Split(e.Label(), "\n") {
			for _, wrapped := range wrapLine(line, width) {
				fmt.Println(wrapped)
			}
		}
	}

	fmt.Printf("\n%d of %d done\n", done, list.Len())
	return nil
}

// wrapLine hard-wraps a single line into pieces of at most width cells.
func wrapLine(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	runes := []rune(s)
	var lines []string
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	return append(lines, string(runes))
}
