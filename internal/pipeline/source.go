package pipeline

import (
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/config"
	"github.com/backmassage/astrosave/internal/container"
	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/locate"
	"github.com/backmassage/astrosave/internal/logging"
	"github.com/backmassage/astrosave/internal/selector"
)

// Source is everything needed to discover the save folders of one platform.
type Source struct {
	Platform domain.Platform
	Locator  locate.Locator
	Fs       afero.Fs
	Policy   domain.RootPolicy
	// Scanner is nil for the directory layout, whose roots are already the
	// save folders.
	Scanner *container.Scanner
	Details selector.DetailsFunc
	Log     logging.Sink
}

// NewSource assembles the Source for platform p. opts is completed with the
// same defaults the locators use, so every component shares one filesystem.
func NewSource(p domain.Platform, policy domain.RootPolicy, opts locate.Options) (*Source, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Log == nil {
		opts.Log = logging.Discard
	}
	loc, err := locate.New(p, opts)
	if err != nil {
		return nil, err
	}

	fs := opts.Fs
	src := &Source{Platform: p, Locator: loc, Fs: fs, Policy: policy, Log: opts.Log}
	switch p {
	case domain.PlatformSteam:
		src.Details = func(dir string) ([]domain.SaveDetail, error) {
			return container.DirectoryDetails(fs, dir)
		}
	default:
		src.Scanner = container.NewScanner(fs, opts.Log)
		src.Details = func(dir string) ([]domain.SaveDetail, error) {
			return container.Details(fs, dir)
		}
	}
	return src, nil
}

// FromConfig builds the Source for cfg.Platform.
func FromConfig(cfg *config.Config, fs afero.Fs, env locate.LookupEnv, log logging.Sink) (*Source, error) {
	return NewSource(cfg.Platform, cfg.RootPolicy, locate.Options{
		Fs:       fs,
		Env:      env,
		Variable: cfg.BaseDirEnv,
		Log:      log,
	})
}

// Discover returns the candidate save folders in discovery order. No root
// at all is a *domain.NotFoundError; roots without candidates are not an
// error, the selector reports them.
func (s *Source) Discover() ([]string, Stats, error) {
	start := time.Now()
	var stats Stats

	roots, err := s.Locator.Locate()
	if err != nil {
		return nil, stats, err
	}
	stats.Roots = len(roots)
	if len(roots) == 0 {
		logging.Logf(s.Log, logging.LevelDebug, "%s: no save root", s.Platform.Label())
		return nil, stats, &domain.NotFoundError{Platform: s.Platform, What: "the save root"}
	}
	if len(roots) > 1 {
		logging.Logf(s.Log, logging.LevelWarn, "%d save roots found, using policy %q", len(roots), s.Policy)
	}

	picked, err := locate.PickRoots(s.Fs, roots, s.Policy)
	if err != nil {
		return nil, stats, err
	}
	stats.Scanned = len(picked)

	var candidates []string
	if s.Scanner == nil {
		candidates = picked
	} else {
		seen := make(map[string]bool)
		for _, root := range picked {
			logging.Logf(s.Log, logging.LevelDebug, "Scanning %s", root)
			dirs, err := s.Scanner.Scan(root)
			if err != nil {
				return nil, stats, err
			}
			for _, d := range dirs {
				if !seen[d] {
					seen[d] = true
					candidates = append(candidates, d)
				}
			}
		}
	}

	stats.Candidates = len(candidates)
	stats.Elapsed = time.Since(start)
	logging.Logf(s.Log, logging.LevelDebug, "%s: %d candidate(s) from %d root(s) in %s",
		s.Platform.Label(), stats.Candidates, stats.Scanned, stats.Elapsed.Round(time.Millisecond))
	return candidates, stats, nil
}

// UI is the console the selector talks to.
type UI struct {
	In   io.Reader
	Out  io.Writer
	Text selector.Text
}

// Select discovers the candidates and asks ui to choose one when there is
// more than one.
func (s *Source) Select(ui UI) (string, error) {
	candidates, _, err := s.Discover()
	if err != nil {
		return "", err
	}
	sel := &selector.Selector{
		In:       ui.In,
		Out:      ui.Out,
		Log:      s.Log,
		Details:  s.Details,
		Text:     ui.Text,
		Platform: s.Platform,
	}
	return sel.Select(candidates)
}
