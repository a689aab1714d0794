// internal/logging/logging.go
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger on w at the named level. quiet raises the level to
// error. An unknown level falls back to info with a warning.
func New(w io.Writer, level string, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "sixframe"})
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info", "":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log level, defaulting to info", "provided", level)
	}
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// Discard is a logger that writes nothing.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}
