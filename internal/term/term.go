// Package term decides whether log output is colored and holds the palette
// shared by the logger and the banner.
//
// The palette is package state: [Configure] sets it once during startup and
// every writer reads it through [Colors]. When colors are disabled every
// sequence is empty, so concatenation is a no-op.
package term

import (
	"os"
	"strings"

	"go.uber.org/atomic"

	"github.com/backmassage/astrosave/internal/config"
)

// Palette maps each output role to its ANSI sequence.
type Palette struct {
	Debug   string
	Info    string
	Success string
	Warn    string
	Error   string
	Accent  string // Banner and highlighted menu text.
	Reset   string
}

// ansi is the palette used when colors are on.
var ansi = Palette{
	Debug:   "\033[1;96m",
	Info:    "\033[1;94m",
	Success: "\033[1;92m",
	Warn:    "\033[1;93m",
	Error:   "\033[1;91m",
	Accent:  "\033[1;95m",
	Reset:   "\033[0m",
}

var current = atomic.NewPointer(&Palette{})

// Configure resolves mode against stderr, where logs go, and installs the
// matching palette.
func Configure(mode config.ColorMode) {
	if resolve(mode, os.Stderr) {
		p := ansi
		current.Store(&p)
		return
	}
	current.Store(&Palette{})
}

// Colors returns the active palette.
func Colors() Palette { return *current.Load() }

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return Colors().Reset != "" }

// Paint wraps text in seq followed by a reset. With an empty seq (colors
// off) text is returned unchanged.
func (p Palette) Paint(seq, text string) string {
	if seq == "" {
		return text
	}
	return seq + text + p.Reset
}

// resolve honors the explicit modes; auto enables colors only on a TTY,
// without NO_COLOR (https://no-color.org) and outside dumb terminals.
func resolve(mode config.ColorMode, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(f) &&
			os.Getenv("NO_COLOR") == "" &&
			!strings.EqualFold(os.Getenv("TERM"), "dumb")
	}
}

// IsTerminal reports whether f is a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
