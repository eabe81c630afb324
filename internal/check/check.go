// Package check provides system diagnostics (--check mode) and pre-run
// validation (CheckDeps) for the environment, the save roots of every
// platform, and the conversion command.
package check

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/config"
	"github.com/backmassage/astrosave/internal/container"
	"github.com/backmassage/astrosave/internal/convert"
	"github.com/backmassage/astrosave/internal/display"
	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/locate"
	"github.com/backmassage/astrosave/internal/pipeline"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrConverterNotFound = errors.New("conversion command not found on PATH")
	ErrConverterMissing  = errors.New("no conversion command configured")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck logs the environment variable, then the roots and candidates of
// every platform, then the conversion command. It reports whether a save
// folder was found for at least one platform; individual failures are
// logged, not returned.
func RunCheck(cfg *config.Config, fs afero.Fs, env locate.LookupEnv, log Logger) bool {
	log.Info("=== System Check ===")

	checkBaseDir(cfg, env, log)

	found := false
	for _, p := range domain.Platforms {
		if checkPlatform(cfg, p, fs, env, log) {
			found = true
		}
	}

	checkConverter(cfg, log)
	return found
}

// checkBaseDir logs the value of the base directory variable.
func checkBaseDir(cfg *config.Config, env locate.LookupEnv, log Logger) {
	if v, ok := env(cfg.BaseDirEnv); ok && v != "" {
		log.Success("%s: %s", cfg.BaseDirEnv, v)
		return
	}
	log.Error("%s is not set (not running on Windows?)", cfg.BaseDirEnv)
}

// checkPlatform runs discovery for p and logs each candidate with the size
// of its index file and the number of saves it lists.
func checkPlatform(cfg *config.Config, p domain.Platform, fs afero.Fs, env locate.LookupEnv, log Logger) bool {
	log.Info("%s:", p.Label())
	src, err := pipeline.NewSource(p, cfg.RootPolicy, locate.Options{
		Fs:       fs,
		Env:      env,
		Variable: cfg.BaseDirEnv,
	})
	if err != nil {
		log.Error("  %v", err)
		return false
	}

	candidates, stats, err := src.Discover()
	switch {
	case domain.IsConfiguration(err):
		log.Warn("  skipped: %v", err)
		return false
	case domain.IsNotFound(err):
		log.Warn("  no save root found")
		return false
	case err != nil:
		log.Error("  discovery failed: %v", err)
		return false
	}

	log.Info("  roots: %d found, %d scanned (policy %s)", stats.Roots, stats.Scanned, cfg.RootPolicy)
	if len(candidates) == 0 {
		log.Warn("  no save folder found")
		return false
	}
	for _, dir := range candidates {
		describeCandidate(fs, src, dir, log)
	}
	log.Success("  %d save folder(s)", len(candidates))
	return true
}

func describeCandidate(fs afero.Fs, src *pipeline.Source, dir string, log Logger) {
	details, err := src.Details(dir)
	if err != nil {
		log.Error("  %s: %v", dir, err)
		return
	}
	size := ""
	if src.Scanner != nil {
		if path, err := container.FirstContainer(fs, dir); err == nil && path != "" {
			if fi, err := fs.Stat(path); err == nil {
				size = ", index " + display.FormatBytes(fi.Size())
			}
		}
	}
	log.Info("  %s (%d save(s)%s)", dir, len(details), size)
	for _, d := range details {
		log.Debug("    %s %s", d.Name, d.Timestamp)
	}
}

// checkConverter logs where the conversion command resolves, if one is set.
func checkConverter(cfg *config.Config, log Logger) {
	if cfg.ConvertCmd == "" {
		log.Info("Converter: none configured")
		return
	}
	path, err := (&convert.Converter{Command: cfg.ConvertCmd}).LookPath()
	if err != nil {
		log.Error("Converter %q not found", cfg.ConvertCmd)
		return
	}
	log.Success("Converter: %s", path)
}

// CheckDeps is the pre-run validation: the base directory variable must be
// set unless a folder was given explicitly, and the conversion command, when
// one is needed, must resolve on PATH. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config, env locate.LookupEnv) error {
	if cfg.SaveFolder == "" {
		if v, ok := env(cfg.BaseDirEnv); !ok || v == "" {
			return &domain.ConfigurationError{Platform: cfg.Platform, Variable: cfg.BaseDirEnv}
		}
	} else if cfg.ConvertCmd == "" {
		return ErrConverterMissing
	}
	if cfg.ConvertCmd == "" {
		return nil
	}
	if _, err := (&convert.Converter{Command: cfg.ConvertCmd}).LookPath(); err != nil {
		return ErrConverterNotFound
	}
	return nil
}
