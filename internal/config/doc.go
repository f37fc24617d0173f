// Package config manages user preferences for the ticklist browser.
//
// Preferences are stored as a YAML file in the platform configuration
// directory (XDG on Linux and macOS, LOCALAPPDATA on Windows). They cover
// only ambient concerns: which panels are visible when the browser starts
// and the logging verbosity. The browser saves the panel visibility back on
// a clean exit, so the next run opens the way the last one ended. The
// checklist contents are a fixed in-memory seed and are deliberately not
// persisted.
//
// A missing configuration file is not an error; Load returns the defaults.
// Save writes atomically (temp file plus rename) so a crash cannot leave a
// corrupt file behind.
package config
