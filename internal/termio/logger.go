package termio

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dzonerzy/go-opts/internal/pool"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Format selects the prefix written before each message.
type Format int

const (
	FormatCircles Format = iota // 🟣 🔵 🟢 🟡 🔴
	FormatSymbols               // ● ◆ ✓ ▲ ✗
	FormatTagged                // [DEBUG] [INFO] ...
	FormatPlain                 // no prefix
)

var prefixes = map[Format][5]string{
	FormatCircles: {"🟣", "🔵", "🟢", "🟡", "🔴"},
	FormatSymbols: {"●", "◆", "✓", "▲", "✗"},
	FormatTagged:  {"[DEBUG]", "[INFO]", "[SUCCESS]", "[WARN]", "[ERROR]"},
}

// Logger writes levelled messages to a Terminal. Warnings and errors go to
// stderr unless ErrorsToStderr(false) is set.
type Logger struct {
	term         *Terminal
	format       Format
	minLevel     Level
	withTime     bool
	timeFormat   string
	errorsStderr bool
	theme        Theme
}

// NewLogger returns a logger with circle prefixes that shows every level.
func NewLogger(t *Terminal) *Logger {
	return &Logger{
		term:         t,
		format:       FormatCircles,
		timeFormat:   "15:04:05",
		errorsStderr: true,
		theme:        DefaultTheme(t),
	}
}

// WithFormat sets the prefix format.
func (l *Logger) WithFormat(f Format) *Logger { l.format = f; return l }

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level Level) *Logger { l.minLevel = level; return l }

// WithTimestamp enables a timestamp after the prefix.
func (l *Logger) WithTimestamp(enabled bool) *Logger { l.withTime = enabled; return l }

// ErrorsToStderr controls whether warnings and errors go to stderr.
func (l *Logger) ErrorsToStderr(enabled bool) *Logger { l.errorsStderr = enabled; return l }

// Log writes one message at level.
func (l *Logger) Log(level Level, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)

	buf := pool.GetBuffer(len(msg) + 32)
	defer pool.PutBuffer(buf)

	line := *buf
	// Blank messages are written as-is so callers can emit spacing.
	if strings.TrimSpace(msg) != "" {
		if prefix := l.prefix(level); prefix != "" {
			line = append(line, prefix...)
			line = append(line, ' ')
		}
		if l.withTime {
			line = append(line, '[')
			line = time.Now().AppendFormat(line, l.timeFormat)
			line = append(line, "] "...)
		}
	}
	line = append(line, msg...)
	*buf = line

	fmt.Fprintln(l.writer(level), l.colorize(level, string(line)))
}

// prefix returns the marker for level, or "" for the plain format and for
// levels outside the known range.
func (l *Logger) prefix(level Level) string {
	if level < LevelDebug || level > LevelError {
		return ""
	}
	return prefixes[l.format][level]
}

func (l *Logger) colorize(level Level, text string) string {
	var c Color
	switch level {
	case LevelDebug:
		c = l.theme.Debug
	case LevelInfo:
		c = l.theme.Info
	case LevelSuccess:
		c = l.theme.Success
	case LevelWarning:
		c = l.theme.Warning
	case LevelError:
		c = l.theme.Error
	default:
		return text
	}
	return NewStyle().Fg(c).Sprint(l.term, text)
}

func (l *Logger) writer(level Level) io.Writer {
	if l.errorsStderr && level >= LevelWarning {
		return l.term.Err()
	}
	return l.term.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
