// Package logging builds the structured slog loggers used by the condorcet
// command. Records go to a caller-supplied writer as text or JSON.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Log levels accepted by New.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level.
//
// The level is one of DEBUG, INFO, WARN, ERROR (case-insensitive); anything
// else falls back to INFO. The format is "json" or "text"; anything else
// falls back to text.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn, "WARNING":
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level names one of the supported levels.
func ValidLevel(level string) bool {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug, LevelInfo, LevelWarn, "WARNING", LevelError:
		return true
	}

	return false
}

// Levels lists the supported levels in lower case, as configuration spells
// them.
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON}
}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	return strings.EqualFold(format, FormatText) || strings.EqualFold(format, FormatJSON)
}
