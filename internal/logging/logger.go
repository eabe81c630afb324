// Package logging provides the leveled, optionally colored logger used by the
// CLI, and the [Sink] capability that discovery components accept instead of
// reaching for a global logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/astrosave/internal/config"
	"github.com/backmassage/astrosave/internal/term"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelWarn
	LevelError
)

// String returns the bracketed tag used in log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "LOG"
	}
}

// Sink is the logging capability injected into discovery components.
type Sink interface {
	Log(level Level, msg string)
}

// Discard is a Sink that drops every message.
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(Level, string) {}

// Logf formats and sends one message to s. A nil sink is treated as Discard.
func Logf(s Sink, level Level, format string, args ...interface{}) {
	if s == nil {
		return
	}
	s.Log(level, fmt.Sprintf(format, args...))
}

// Logger provides leveled, optionally colored logging with optional file sink.
// Console output goes to stderr so stdout stays free for menus and results.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	verbose  bool
	file     *os.File
	filePath string
	now      func() time.Time
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{out: os.Stderr, verbose: cfg.Verbose, now: time.Now}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Log implements Sink. Debug lines are dropped unless the logger is verbose.
func (l *Logger) Log(level Level, msg string) {
	if level == LevelDebug && !l.verbose {
		return
	}
	l.line(level, msg)
}

func levelColor(p term.Palette, level Level) string {
	switch level {
	case LevelDebug:
		return p.Debug
	case LevelInfo:
		return p.Info
	case LevelSuccess:
		return p.Success
	case LevelWarn:
		return p.Warn
	case LevelError:
		return p.Error
	default:
		return ""
	}
}

func (l *Logger) line(level Level, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	tag := "[" + level.String() + "]"
	p := term.Colors()
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, ts+" "+p.Paint(levelColor(p, level), tag)+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+tag+" "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.Log(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LevelError, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when the logger is verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Log(LevelDebug, fmt.Sprintf(format, args...))
}
