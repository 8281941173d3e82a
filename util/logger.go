// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"ignition/internal/errors"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogWarn    LogLevel = 1
	LogNormal  LogLevel = 2
	LogVerbose LogLevel = 3
	LogDebug   LogLevel = 4
)

// levelNames maps the textual --level values onto the numeric scale.
// "error" and "off" both leave only [ERR] lines, which always print.
var levelNames = map[string]LogLevel{
	"off":   LogQuiet,
	"error": LogQuiet,
	"warn":  LogWarn,
	"info":  LogNormal,
	"debug": LogVerbose,
	"trace": LogDebug,
}

// VerbosityLevel converts a -v count into a LogLevel: one -v shows
// info, two verbose, three or more debug.
func VerbosityLevel(count int) LogLevel {
	switch {
	case count <= 0:
		return LogQuiet
	case count == 1:
		return LogNormal
	case count == 2:
		return LogVerbose
	default:
		return LogDebug
	}
}

// ParseLevel converts a level name such as "warn" or "debug" into a
// LogLevel.  Matching is case-insensitive.
func ParseLevel(name string) (LogLevel, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LogQuiet, fmt.Errorf("%w %q (want off, error, warn, info, debug or trace)",
			errors.ErrUnknownLevel, name)
	}
	return lvl, nil
}

// ANSI colours for level tags when writing to a terminal.
var levelColors = map[string]string{
	"ERR": "\x1b[31m",
	"WRN": "\x1b[33m",
	"INF": "\x1b[36m",
	"VRB": "\x1b[37m",
	"DBG": "\x1b[90m",
}

const colorReset = "\x1b[0m"

// Logger writes levelled messages to stderr with optional timestamps
// and level prefixes.
type Logger struct {
	level      LogLevel
	output     io.Writer
	mu         sync.Mutex
	timestamps bool // if true, prepend HH:MM:SS.mmm timestamps
	color      bool
}

// NewLogger returns a Logger that prints messages at or below the given
// level (0 = quiet, 1 = warn, 2 = info, 3 = verbose, 4 = debug).
func NewLogger(verbosity int) *Logger {
	l := &Logger{
		level:      LogLevel(verbosity),
		timestamps: verbosity >= int(LogDebug), // auto-enable timestamps in debug mode
	}
	l.SetOutput(os.Stderr)
	return l
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) { l.timestamps = on }

// SetOutput overrides the output writer (default: os.Stderr).  Level
// tags are coloured only when w is a terminal.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
	l.color = isTerminal(w)
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Info prints at LogNormal and above.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("INF", format, args...)
	}
}

// Warn prints at LogWarn and above.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogWarn {
		l.write("WRN", format, args...)
	}
}

// Verbose prints at LogVerbose and above.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints at LogDebug.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

// Error always prints regardless of verbosity.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tag := "[" + level + "]"
	if l.color {
		tag = levelColors[level] + tag + colorReset
	}

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.output, "%s %s %s\n", ts, tag, msg)
	} else {
		fmt.Fprintf(l.output, "%s %s\n", tag, msg)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
