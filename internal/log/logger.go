// Package log is the leveled logger used by the command-line tools.
// Library packages never log.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is the severity of a log message.
type Level uint32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
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

// ParseLevel converts a case-insensitive level name. Unknown names yield
// LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "ERROR":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

var (
	level  atomic.Uint32
	logger atomic.Pointer[stdlog.Logger]
)

func init() {
	SetLevel(LevelInfo)
	SetOutput(os.Stderr)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) { level.Store(uint32(l)) }

// GetLevel returns the current minimum level.
func GetLevel() Level { return Level(level.Load()) }

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.Store(stdlog.New(w, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lmicroseconds))
}

func logf(l Level, format string, v ...any) {
	if l < GetLevel() {
		return
	}
	logger.Load().Printf("[%-5s] %s", l, fmt.Sprintf(format, v...))
}

// Debugf logs at LevelDebug.
func Debugf(format string, v ...any) { logf(LevelDebug, format, v...) }

// Infof logs at LevelInfo.
func Infof(format string, v ...any) { logf(LevelInfo, format, v...) }

// Warnf logs at LevelWarn.
func Warnf(format string, v ...any) { logf(LevelWarn, format, v...) }

// Errorf logs at LevelError.
func Errorf(format string, v ...any) { logf(LevelError, format, v...) }
