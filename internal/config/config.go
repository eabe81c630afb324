// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/backmassage/astrosave/internal/domain"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Discovery.
	Platform   domain.Platform   // Default: "microsoft".
	RootPolicy domain.RootPolicy // Default: "last".
	SaveFolder string            // Optional positional arg; skips discovery.

	// Actions.
	ConvertCmd string // External converter, invoked as "<cmd> <folder>".
	Detect     bool   // Non-interactive detection for all platforms, JSON on stdout.
	CheckOnly  bool   // Run --check diagnostics and exit.

	// Display and logging.
	Lang      string // Default: "en".
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.

	// Environment variable that holds the per-user local app data directory.
	// Fixed: "LOCALAPPDATA".
	BaseDirEnv string
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Platform:   domain.PlatformMicrosoft,
		RootPolicy: domain.RootsLast,
		Lang:       "en",
		ColorMode:  ColorAuto,
		BaseDirEnv: "LOCALAPPDATA",
	}
}

// Validate checks enum fields and mutually exclusive modes.
func (c *Config) Validate() error {
	switch c.Platform {
	case domain.PlatformMicrosoft, domain.PlatformSteam:
		// valid
	default:
		return errors.New("invalid platform (use 'microsoft' or 'steam')")
	}

	switch c.RootPolicy {
	case domain.RootsLast, domain.RootsNewest, domain.RootsAll:
		// valid
	default:
		return errors.New("invalid root policy (use 'last', 'newest' or 'all')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.Lang) == "" {
		return errors.New("language must not be empty")
	}
	if c.BaseDirEnv == "" {
		return errors.New("base directory variable must not be empty")
	}

	if c.Detect && c.CheckOnly {
		return errors.New("--detect and --check cannot be combined")
	}
	if c.SaveFolder != "" && (c.Detect || c.CheckOnly) {
		return errors.New("a save folder argument cannot be combined with --detect or --check")
	}
	if c.SaveFolder != "" && c.ConvertCmd == "" {
		return errors.New("a save folder argument requires --convert")
	}
	return nil
}

// NormalizeDirArg strips trailing path separators from a directory argument
// while preserving the root path "/".
func NormalizeDirArg(s string) string {
	if s == "" {
		return s
	}
	trimmed := strings.TrimRight(s, "/"+string(filepath.Separator))
	if trimmed == "" {
		return string(filepath.Separator)
	}
	return trimmed
}
