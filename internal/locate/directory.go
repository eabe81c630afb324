package locate

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/backmassage/astrosave/internal/domain"
	"github.com/backmassage/astrosave/internal/logging"
)

// Directory-based layout: <base>/Astro/Saved/SaveGames.
const steamSubpath = "Astro/Saved/SaveGames"

// DirectoryLocator finds the fixed save directory used by the Steam build.
// It yields at most one root.
type DirectoryLocator struct {
	opts Options
}

// NewDirectoryLocator returns a DirectoryLocator with defaults applied to opts.
func NewDirectoryLocator(opts Options) *DirectoryLocator {
	return &DirectoryLocator{opts: opts.withDefaults()}
}

func (l *DirectoryLocator) Platform() domain.Platform { return domain.PlatformSteam }

// SteamSaveDir returns the save directory for the given base dir.
func SteamSaveDir(base string) string {
	return filepath.Join(base, filepath.FromSlash(steamSubpath))
}

// Locate returns the save directory when it exists, otherwise an empty slice.
func (l *DirectoryLocator) Locate() ([]string, error) {
	base, err := baseDir(l.Platform(), l.opts)
	if err != nil {
		return nil, err
	}

	dir := SteamSaveDir(base)
	fi, err := l.opts.Fs.Stat(dir)
	switch {
	case os.IsNotExist(err):
		logging.Logf(l.opts.Log, logging.LevelDebug, "Steam save directory not found: %s", dir)
		return nil, nil
	case err != nil:
		return nil, eris.Wrapf(err, "stat %s", dir)
	case !fi.IsDir():
		logging.Logf(l.opts.Log, logging.LevelWarn, "Steam save path is not a directory: %s", dir)
		return nil, nil
	}
	logging.Logf(l.opts.Log, logging.LevelDebug, "Steam save directory found: %s", dir)
	return []string{dir}, nil
}
