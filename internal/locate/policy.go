package locate

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/domain"
)

// PickRoots applies policy to the enumerated roots and returns the roots to
// scan. Enumeration order depends on the filesystem, so RootsLast is only as
// deterministic as the underlying directory listing.
func PickRoots(fs afero.Fs, roots []string, policy domain.RootPolicy) ([]string, error) {
	if len(roots) <= 1 {
		return roots, nil
	}

	switch policy {
	case domain.RootsAll:
		return roots, nil
	case domain.RootsNewest:
		best := -1
		var bestUnix int64
		for i, r := range roots {
			fi, err := fs.Stat(r)
			if err != nil {
				return nil, eris.Wrapf(err, "stat %s", r)
			}
			// >= keeps the later entry on ties, matching RootsLast.
			if mod := fi.ModTime().UnixNano(); best < 0 || mod >= bestUnix {
				best, bestUnix = i, mod
			}
		}
		return roots[best : best+1], nil
	default:
		return roots[len(roots)-1:], nil
	}
}
