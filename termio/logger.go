package termio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the tag text for the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects how messages are prefixed.
type LogFormat int

const (
	// FormatTagged prefixes messages with [LEVEL] tags.
	FormatTagged LogFormat = iota
	// FormatPlain emits the bare message.
	FormatPlain
)

// Logger writes leveled messages through a Manager, colorized by severity.
// Messages below the configured level are dropped.
type Logger struct {
	mgr          *Manager
	level        LogLevel
	format       LogFormat
	withTime     bool
	timeFormat   string
	errorsStderr bool
}

// NewLogger creates a logger bound to the given manager, emitting Info and
// above in tagged format.
func NewLogger(mgr *Manager) *Logger {
	return &Logger{
		mgr:          mgr,
		level:        LevelInfo,
		format:       FormatTagged,
		timeFormat:   "15:04:05",
		errorsStderr: true,
	}
}

// WithLevel sets the minimum severity that is emitted.
func (l *Logger) WithLevel(level LogLevel) *Logger { l.level = level; return l }

// WithFormat sets the message format.
func (l *Logger) WithFormat(format LogFormat) *Logger { l.format = format; return l }

// WithTimestamp enables or disables a timestamp on each message.
func (l *Logger) WithTimestamp(enabled bool) *Logger { l.withTime = enabled; return l }

// WithTimeFormat sets the timestamp layout (a Go time format string).
func (l *Logger) WithTimeFormat(layout string) *Logger { l.timeFormat = layout; return l }

// ErrorsToStderr controls whether warnings and errors go to the error
// stream instead of standard output.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger { l.errorsStderr = enabled; return l }

// Log emits one message at the given level.
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(l.selectWriter(level), l.formatMessage(level, msg))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	if strings.TrimSpace(msg) == "" {
		return msg
	}

	var parts []string
	if l.format == FormatTagged {
		parts = append(parts, "["+level.String()+"]")
	}
	if l.withTime {
		parts = append(parts, time.Now().Format(l.timeFormat))
	}
	parts = append(parts, msg)

	return l.colorizeByLevel(level, strings.Join(parts, " "))
}

// colorizeByLevel applies the severity color for the level.
func (l *Logger) colorizeByLevel(level LogLevel, text string) string {
	switch level {
	case LevelDebug:
		return l.mgr.Colorize(text, color.FgHiBlack)
	case LevelInfo:
		return l.mgr.Colorize(text, color.FgCyan)
	case LevelWarn:
		return l.mgr.Colorize(text, color.FgYellow)
	case LevelError:
		return l.mgr.Colorize(text, color.FgRed)
	default:
		return text
	}
}

// selectWriter chooses stdout or stderr based on log level and configuration.
func (l *Logger) selectWriter(level LogLevel) io.Writer {
	if l.errorsStderr && level >= LevelWarn {
		return l.mgr.Err()
	}
	return l.mgr.Out()
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) { l.Log(LevelWarn, format, args...) }

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }
