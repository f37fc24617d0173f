// Package logging provides structured logging for the ticklist browser.
//
// It wraps a zap logger with package-level convenience functions
// (Info, Debug, Warn, Error). Logging is silent by default; set the
// TICKLIST_LOG_LEVEL environment variable or the log_level preference to
// enable it. Because the TUI owns the terminal for the whole run, output
// goes to a log file under the configuration directory rather than stdout.
//
// Initialize logging once at startup and flush on the way out:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
