package container

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/logging"
)

// dateMarkerRE matches "$YYYY.MM.DD", the heuristic that an index file
// belongs to the target title.
var dateMarkerRE = regexp.MustCompile(`\$\d{4}\.\d{2}\.\d{2}`)

// HasDateMarker reports whether decoded container text carries a date marker.
func HasDateMarker(text string) bool {
	return dateMarkerRE.MatchString(text)
}

// Scanner walks a root and collects the directories holding at least one
// index file with a date marker.
type Scanner struct {
	Fs  afero.Fs     // Default: afero.NewOsFs().
	Log logging.Sink // Default: logging.Discard.
}

// NewScanner returns a Scanner over fs.
func NewScanner(fs afero.Fs, log logging.Sink) *Scanner {
	return &Scanner{Fs: fs, Log: log}
}

// Scan walks root recursively in lexical order. Each matching directory is
// reported once, in walk order. A walk or read failure aborts the scan and
// no partial result is returned.
func (s *Scanner) Scan(root string) ([]string, error) {
	fs := s.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	var dirs []string
	seen := make(map[string]bool)
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() || !IsContainerName(info.Name()) {
			return nil
		}
		dir := filepath.Dir(path)
		logging.Logf(s.Log, logging.LevelDebug, "Container file found: %s", path)

		text, err := ReadText(fs, path)
		if err != nil {
			return err
		}
		if !HasDateMarker(text) || seen[dir] {
			return nil
		}
		seen[dir] = true
		dirs = append(dirs, dir)
		logging.Logf(s.Log, logging.LevelDebug, "Matching save folder: %s", dir)
		return nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "scan %s", root)
	}
	return dirs, nil
}
