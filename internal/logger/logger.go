package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
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

// NewFileLogger creates a logger that appends to a file at the given level
func NewFileLogger(path string, level string) (*Logger, func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, lvl), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel parses a level name; empty means info
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(level)
}

// DocumentCounted logs a finished word count
func (l *Logger) DocumentCounted(path string, words int, duration time.Duration) {
	l.Debug("document counted",
		"file", path,
		"words", words,
		"duration", duration.Round(time.Microsecond))
}

// GoalReached logs the moment a document meets its goal
func (l *Logger) GoalReached(path string, words, target int, goalType string) {
	l.Info("goal reached",
		"file", path,
		"words", words,
		"target", target,
		"goal_type", goalType)
}

// ScanStarted logs the start of a project scan
func (l *Logger) ScanStarted(root string) {
	l.Info("scan started", "root", root)
}

// ScanCompleted logs the completion of a project scan
func (l *Logger) ScanCompleted(files, words, errors int, duration time.Duration) {
	l.Info("scan completed",
		"files", files,
		"words", words,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path string, interval time.Duration, goalTarget int) {
	l.Debug("config loaded",
		"path", path,
		"interval", interval,
		"goal", goalTarget)
}

// FileForgotten logs a tracked file dropped from the history after it vanished
func (l *Logger) FileForgotten(file string) {
	l.Info("file forgotten", "file", file)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
