package shared

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger at the given level. Unknown level
// strings fall back to info.
func SetupLogger(level string) *log.Logger {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parsed,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// SetupFileLogger configures a debug logger writing to the named file, for
// commands whose stderr is occupied by a TUI
func SetupFileLogger(filename string) (*log.Logger, error) {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	}), nil
}

// SetupDebugLogger is SetupLogger with the level chosen by a boolean flag
func SetupDebugLogger(debug bool) *log.Logger {
	if debug {
		return SetupLogger("debug")
	}
	return SetupLogger("info")
}
