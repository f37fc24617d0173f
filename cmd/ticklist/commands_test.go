package main

import (
	"strings"
	"testing"

	"github.com/muurk/ticklist/internal/config"
	"github.com/muurk/ticklist/internal/tui"
)

func TestRememberToggles(t *testing.T) {
	tests := []struct {
		name        string
		toggles     tui.Toggles
		wantChanged bool
	}{
		{"unchanged state is not rewritten", tui.Toggles{ShowSidePanel: true, ShowInputBox: true}, false},
		{"hidden side panel is remembered", tui.Toggles{ShowSidePanel: false, ShowInputBox: true}, true},
		{"hidden input box is remembered", tui.Toggles{ShowSidePanel: true, ShowInputBox: false}, true},
		{"both hidden is remembered", tui.Toggles{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := config.NewPreferences()

			changed := rememberToggles(prefs, tt.toggles)
			if changed != tt.wantChanged {
				t.Fatalf("rememberToggles() = %v, want %v", changed, tt.wantChanged)
			}
			if prefs.ShowSidePanel != tt.toggles.ShowSidePanel {
				t.Errorf("ShowSidePanel = %v, want %v", prefs.ShowSidePanel, tt.toggles.ShowSidePanel)
			}
			if prefs.ShowInputBox != tt.toggles.ShowInputBox {
				t.Errorf("ShowInputBox = %v, want %v", prefs.ShowInputBox, tt.toggles.ShowInputBox)
			}
		})
	}
}

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"short line passes through", "Hello world", 80, []string{"Hello world"}},
		{"exact width passes through", "abcd", 4, []string{"abcd"}},
		{"long line wraps", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"zero width disables wrapping", "abcdef", 0, []string{"abcdef"}},
		{"empty line stays one line", "", 10, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.line, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapLine(%q, %d) = %v, want %v", tt.line, tt.width, got, tt.want)
			}
		})
	}
}
