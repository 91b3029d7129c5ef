// Package logger provides leveled diagnostic logging for dryspot
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// Log provides a compatibility layer that mimics logrus API but uses pterm
var Log = &Logger{level: LevelInfo}

type LogLevel int

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	// LevelDisabled silences every message, including fatal ones.
	LevelDisabled
)

func (l LogLevel) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Logger is safe for concurrent use; timer goroutines log while the UI toggles the level.
type Logger struct {
	mu    sync.RWMutex
	level LogLevel
	saved []LogLevel
}

// enabled reports whether messages at level are printed.
func (l *Logger) enabled(level LogLevel) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level <= level
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.enabled(LevelTrace) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.enabled(LevelDebug) {
		pterm.Debug.Printfln(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.enabled(LevelInfo) {
		pterm.Info.Printfln(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.enabled(LevelWarn) {
		pterm.Warning.Printfln(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.enabled(LevelError) {
		pterm.Error.Printfln(format, args...)
	}
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	if l.enabled(LevelFatal) {
		pterm.Error.Printfln(format, args...)
	}
	os.Exit(1)
}

func (l *Logger) Trace(args ...interface{}) {
	if l.enabled(LevelTrace) {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Debug(args ...interface{}) {
	if l.enabled(LevelDebug) {
		pterm.Debug.Println(args...)
	}
}

func (l *Logger) Info(args ...interface{}) {
	if l.enabled(LevelInfo) {
		pterm.Info.Println(args...)
	}
}

func (l *Logger) Warn(args ...interface{}) {
	if l.enabled(LevelWarn) {
		pterm.Warning.Println(args...)
	}
}

func (l *Logger) Error(args ...interface{}) {
	if l.enabled(LevelError) {
		pterm.Error.Println(args...)
	}
}

func (l *Logger) Fatal(args ...interface{}) {
	if l.enabled(LevelFatal) {
		pterm.Error.Println(args...)
	}
	os.Exit(1)
}

// GetLevel returns the active level.
func (l *Logger) GetLevel() LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.level
}

// Disable silences the logger until Restore is called. Calls nest.
func (l *Logger) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.saved = append(l.saved, l.level)
	l.level = LevelDisabled
}

// Restore brings back the level active before the matching Disable.
func (l *Logger) Restore() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.saved) == 0 {
		return
	}

	l.level = l.saved[len(l.saved)-1]
	l.saved = l.saved[:len(l.saved)-1]
}

func SetLevel(level string) error {
	var lvl LogLevel

	switch strings.ToLower(level) {
	case "trace":
		lvl = LevelTrace
	case "debug":
		lvl = LevelDebug
	case "info":
		lvl = LevelInfo
	case "warn", "warning":
		lvl = LevelWarn
	case "error":
		lvl = LevelError
	case "fatal":
		lvl = LevelFatal
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	Log.mu.Lock()
	Log.level = lvl
	Log.mu.Unlock()

	return nil
}

func GetLogger() *Logger {
	return Log
}
