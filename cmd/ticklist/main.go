// Ticklist is an interactive checklist browser for the terminal.
//
// It displays a fixed checklist inside a bordered, multi-panel layout and
// supports keyboard-only navigation: arrow keys move the selection, Left
// deselects, End and Home toggle the optional panels, Esc quits.
//
// Usage:
//
//	ticklist [command] [flags]
//
// Running without arguments launches the interactive browser.
// See 'ticklist --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/ticklist/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ticklist",
	Short: "Terminal Checklist Browser",
	Long: `An interactive terminal checklist browser.

Shows a navigable checklist inside a bordered, multi-panel layout with
wrap-around selection and toggleable side and input panels.

If no command is specified, the interactive browser will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the browser when no subcommand provided
		return runBrowse(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ticklist %s\n", version.Full())
	},
}
