package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

var levels = map[string]int{
	LevelDebug:   0,
	LevelInfo:    1,
	LevelWarning: 2,
	LevelError:   3,
}

// Logger writes messages at or above Level. A nil *Logger discards everything.
type Logger struct {
	Level string
	out   *log.Logger
}

// New returns a Logger writing to w. Unknown levels behave as info.
func New(level string, w io.Writer) *Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if _, ok := levels[level]; !ok {
		level = LevelInfo
	}
	return &Logger{Level: level, out: log.New(w, "", log.LstdFlags)}
}

// Default returns an info-level Logger writing to stderr.
func Default() *Logger {
	return New(LevelInfo, os.Stderr)
}

func (l *Logger) shouldLog(level string) bool {
	if l == nil {
		return false
	}
	return levels[level] >= levels[l.Level]
}

func (l *Logger) printf(level, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	out := l.out
	if out == nil {
		out = log.Default()
	}
	out.Printf("["+strings.ToUpper(level)+"] "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.printf(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.printf(LevelInfo, format, v...)
}

func (l *Logger) Warning(format string, v ...interface{}) {
	l.printf(LevelWarning, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.printf(LevelError, format, v...)
}
