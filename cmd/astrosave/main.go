// Command astrosave is the CLI entrypoint for the Astroneer save folder finder.
//
// It parses flags, validates configuration, and either runs diagnostics
// (--check), non-interactive detection (--detect), or discovery followed by
// an optional conversion of the selected folder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/check"
	"github.com/backmassage/astrosave/internal/config"
	"github.com/backmassage/astrosave/internal/convert"
	"github.com/backmassage/astrosave/internal/display"
	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/locale"
	"github.com/backmassage/astrosave/internal/logging"
	"github.com/backmassage/astrosave/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Process exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitUsage         = 2
	exitConfiguration = 3
	exitNotFound      = 4
	exitInterrupted   = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "astrosave: %v\n", err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "astrosave: %v\n", err)
		return exitUsage
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "astrosave: %v\n", err)
		return exitFailure
	}
	defer log.Close()

	cat, err := locale.New(cfg.Lang)
	if err != nil {
		log.Error("Cannot load messages: %v", err)
		return exitFailure
	}
	log.Debug("astrosave v%s (%s), language %s", version, commit, cat.Tag())

	fs := afero.NewOsFs()
	env := os.LookupEnv

	// Phase 2: modes that never prompt.
	if cfg.Detect {
		return detect(&cfg, fs, env, log, os.Stdout)
	}

	display.PrintBanner(os.Stderr)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, fs, env, log) {
			return exitFailure
		}
		return exitOK
	}

	if err := check.CheckDeps(&cfg, env); err != nil {
		log.Error("%s", cat.ErrorMessage(err))
		return exitCode(err)
	}

	var conv *convert.Converter
	if cfg.ConvertCmd != "" {
		conv = &convert.Converter{Command: cfg.ConvertCmd, Verbose: cfg.Verbose, Log: log}
	}

	// Phase 3: an explicit folder skips discovery. Interrupts keep their
	// default behavior here so Ctrl-C at the menu ends the process.
	if cfg.SaveFolder != "" {
		return convertFolder(conv, cfg.SaveFolder, cat, log)
	}

	src, err := pipeline.FromConfig(&cfg, fs, env, log)
	if err != nil {
		log.Error("%s", cat.ErrorMessage(err))
		return exitCode(err)
	}
	folder, err := src.Select(pipeline.UI{In: os.Stdin, Out: os.Stdout, Text: cat.SelectorText()})
	if err != nil {
		log.Error("%s", cat.ErrorMessage(err))
		return exitCode(err)
	}
	log.Success("%s", cat.T(locale.ResultSelected, map[string]string{"Folder": folder}))

	if conv == nil {
		fmt.Fprintln(os.Stdout, folder)
		return exitOK
	}
	return convertFolder(conv, folder, cat, log)
}

// detect prints the JSON detection result for every platform.
func detect(cfg *config.Config, fs afero.Fs, env func(string) (string, bool), log *logging.Logger, w io.Writer) int {
	sources := make([]*pipeline.Source, 0, len(domain.Platforms))
	for _, p := range domain.Platforms {
		c := *cfg
		c.Platform = p
		src, err := pipeline.FromConfig(&c, fs, env, log)
		if err != nil {
			log.Error("%v", err)
			return exitFailure
		}
		sources = append(sources, src)
	}
	if err := pipeline.WriteJSON(w, pipeline.Detect(sources)); err != nil {
		log.Error("%v", err)
		return exitFailure
	}
	return exitOK
}

// convertFolder runs the converter on folder and logs the outcome. SIGINT
// and SIGTERM are trapped only while the child runs; they stop the child
// and the run exits with exitInterrupted.
func convertFolder(conv *convert.Converter, folder string, cat *locale.Catalog, log *logging.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("%s", cat.T(locale.ConvertStart, map[string]string{"Folder": folder, "Command": conv.Command}))
	if err := pipeline.Convert(ctx, conv, folder, log); err != nil {
		if ctx.Err() != nil {
			log.Warn("Received interrupt, conversion stopped")
			return exitInterrupted
		}
		log.Error("%s", cat.T(locale.ConvertFailed, map[string]string{"Error": err.Error()}))
		return exitFailure
	}
	log.Success("%s", cat.T(locale.ConvertDone, nil))
	return exitOK
}

// exitCode maps a discovery error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case domain.IsConfiguration(err):
		return exitConfiguration
	case domain.IsNotFound(err):
		return exitNotFound
	case errors.Is(err, check.ErrConverterMissing):
		return exitUsage
	default:
		return exitFailure
	}
}
