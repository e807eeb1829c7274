// Package logger wraps charm/log for structured CLI logging.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a logger at info level writing to w.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// LevelFor maps the --quiet and --verbose flags to a level.
// quiet wins when both are set.
func LevelFor(quiet, verbose bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, engine string) {
	l.Debug("config loaded",
		"path", path,
		"engine", engine)
}

// BatchStarted logs the start of a conversion run
func (l *Logger) BatchStarted(files, workers int) {
	l.Debug("conversion started",
		"files", files,
		"workers", workers)
}

// FileConverted logs a successful file conversion
func (l *Logger) FileConverted(source, dest string, duration time.Duration) {
	l.Info("converted",
		"source", source,
		"dest", dest,
		"duration", duration.Round(time.Millisecond))
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source string, err error) {
	l.Error("conversion failed",
		"source", source,
		"error", err)
}

// BatchCompleted logs the completion of a conversion run
func (l *Logger) BatchCompleted(succeeded, failed int, duration time.Duration) {
	l.Info("conversion completed",
		"succeeded", succeeded,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
