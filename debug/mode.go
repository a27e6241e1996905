// Package debug builds the structured logger used across a generation run.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type DebugLevel int

const (
	LevelOff DebugLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (dl DebugLevel) String() string {
	switch dl {
	case LevelOff:
		return "OFF"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

func ParseLevel(s string) (DebugLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF":
		return LevelOff, nil
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "", "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "TRACE":
		return LevelTrace, nil
	default:
		return LevelInfo, fmt.Errorf("invalid debug level %q", s)
	}
}

// NewLogger returns a text logger writing to w. LevelOff discards everything;
// LevelDebug and LevelTrace also record source locations.
func NewLogger(w io.Writer, level DebugLevel) *slog.Logger {
	if level <= LevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     slogLevel(level),
		AddSource: level >= LevelDebug,
	}))
}

func slogLevel(level DebugLevel) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
