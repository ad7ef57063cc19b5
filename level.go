package zlog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level is a record severity. Levels order from TraceLevel (most verbose) up
// to ErrorLevel (most severe); Disabled sorts above every real level.
type Level int8

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel

	// Disabled is only meaningful as a filter entry value: a scope whose
	// minimum level is Disabled emits nothing.
	Disabled
)

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "trace"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case Disabled:
		return "off"
	}
	return "unknown"
}

// ParseLevel parses a textual log level into a Level.
// Returns Disabled and an error if parsing fails.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "off", "none", "disabled":
		return Disabled, nil
	}
	return Disabled, fmt.Errorf("unknown log level %q", level)
}

// zerologLevel maps a Level onto the sink backend's level scale.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	}
	return zerolog.NoLevel
}
