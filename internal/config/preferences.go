package config

// Preferences represents application-wide user preferences. The checklist
// contents themselves are never persisted; only display preferences and the
// logging level live here.
type Preferences struct {
	Version int `yaml:"version"`

	// Initial panel visibility when the browser starts.
	ShowSidePanel bool `yaml:"show_side_panel"`
	ShowInputBox  bool `yaml:"show_input_box"`

	// Logging verbosity: "", "debug", "info", "warn" or "error".
	// Empty means silent. The TICKLIST_LOG_LEVEL environment variable
	// overrides this value.
	LogLevel string `yaml:"log_level,omitempty"`
}

// NewPreferences creates preferences with default values: both panels
// visible, logging silent.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:       1,
		ShowSidePanel: true,
		ShowInputBox:  true,
	}
}
