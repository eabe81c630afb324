package locate

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/logging"
)

// Package-based layout: <base>/Packages/<publisher>*/SystemAppData/wgs.
const (
	packagesDir      = "Packages"
	publisherPattern = "SystemEraSoftworks*"
	wgsSubpath       = "SystemAppData/wgs"
)

// PackageLocator finds the per-title package folders of the Microsoft Store
// build. Each match of the publisher wildcard is one installation root.
type PackageLocator struct {
	opts Options
}

// NewPackageLocator returns a PackageLocator with defaults applied to opts.
func NewPackageLocator(opts Options) *PackageLocator {
	return &PackageLocator{opts: opts.withDefaults()}
}

func (l *PackageLocator) Platform() domain.Platform { return domain.PlatformMicrosoft }

// Pattern returns the wildcard expanded by Locate for the given base dir.
func Pattern(base string) string {
	return filepath.Join(base, packagesDir, publisherPattern, filepath.FromSlash(wgsSubpath))
}

// Locate expands the package wildcard. Matches are returned in enumeration
// order; an empty slice means the title is not installed for this user.
func (l *PackageLocator) Locate() ([]string, error) {
	base, err := baseDir(l.Platform(), l.opts)
	if err != nil {
		return nil, err
	}

	pattern := Pattern(base)
	roots, err := globDirs(l.opts, pattern)
	if err != nil {
		return nil, eris.Wrapf(err, "expand %s", pattern)
	}
	for _, r := range roots {
		logging.Logf(l.opts.Log, logging.LevelDebug, "Package root found: %s", r)
	}
	return roots, nil
}

// globDirs expands pattern on the locator's filesystem and keeps directories.
func globDirs(o Options, pattern string) ([]string, error) {
	matches, err := afero.Glob(o.Fs, pattern)
	if err != nil {
		return nil, err
	}
	dirs := matches[:0]
	for _, m := range matches {
		fi, err := o.Fs.Stat(m)
		if err != nil || !fi.IsDir() {
			continue
		}
		dirs = append(dirs, m)
	}
	return dirs, nil
}
