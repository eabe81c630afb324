package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into discovery, actions, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/astrosave/internal/domain"
)

// errExit is returned by parseArgs after --help or --version was printed.
var errExit = errors.New("exit requested")

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, too many positional args).
func ParseFlags(cfg *Config, version string) error {
	err := parseArgs(cfg, version, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errExit) {
		os.Exit(0)
	}
	return err
}

// parseArgs is ParseFlags without the process exit, so tests can drive it.
func parseArgs(cfg *Config, version string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("astrosave", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(stderr, version) }

	var negated negatedFlags

	defineDiscoveryFlags(fs, cfg)
	defineActionFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stderr, version)
			return errExit
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(stderr, version)
		return errExit
	}
	if negated.showVersion {
		fmt.Fprintln(stdout, "astrosave v"+version)
		return errExit
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDiscoveryFlags registers -p/--platform and --roots.
func defineDiscoveryFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&platformValue{&cfg.Platform}, "platform", "Platform convention: microsoft | steam")
	fs.Var(&platformValue{&cfg.Platform}, "p", "Same as --platform")
	fs.Var(&rootPolicyValue{&cfg.RootPolicy}, "roots", "Root policy: last | newest | all")
}

// defineActionFlags registers --convert, --detect, -c/--check.
func defineActionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConvertCmd, "convert", "", "Run <command> <folder> on the selected folder")
	fs.BoolVar(&cfg.Detect, "detect", false, "Detect folders for every platform without prompting")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
}

// defineDisplayFlags registers --lang, --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Message language (en, fr)")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs accepts at most one positional arg: an explicit save folder.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.SaveFolder = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one save folder, got %d arguments", len(args))
	}
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 36 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "astrosave v" + version + " - Astroneer save folder finder"},
		{"", ""},
		{"  astrosave [OPTIONS] [save_folder]", ""},
		{"", ""},
		{"Discovery", ""},
		{"  -p, --platform <microsoft|steam>", "Save convention (default: microsoft)"},
		{"  --roots <last|newest|all>", "Policy for several installations (default: last)"},
		{"", ""},
		{"Actions", ""},
		{"  --convert <command>", "Run <command> with the selected folder"},
		{"  --detect", "Detect every platform without prompting (JSON)"},
		{"  -c, --check", "Diagnostics (environment, roots, candidates)"},
		{"", ""},
		{"Display", ""},
		{"  --lang <tag>", "Message language (default: en)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use enum types (Platform, RootPolicy) with flag.Var.

type platformValue struct{ p *domain.Platform }

func (v *platformValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *platformValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "microsoft", "xbox", "ms":
		*v.p = domain.PlatformMicrosoft
	case "steam":
		*v.p = domain.PlatformSteam
	default:
		return fmt.Errorf("invalid platform %q (use 'microsoft' or 'steam')", s)
	}
	return nil
}

type rootPolicyValue struct{ p *domain.RootPolicy }

func (v *rootPolicyValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *rootPolicyValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "last":
		*v.p = domain.RootsLast
	case "newest":
		*v.p = domain.RootsNewest
	case "all":
		*v.p = domain.RootsAll
	default:
		return fmt.Errorf("invalid root policy %q (use 'last', 'newest' or 'all')", s)
	}
	return nil
}
