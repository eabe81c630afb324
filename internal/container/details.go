package container

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/backmassage/astrosave/internal/domain"
)

// detailRE captures a save identifier and its timestamp, e.g.
// "SAVE_1$c2023.05.01-10.00.00".
var detailRE = regexp.MustCompile(`([A-Za-z0-9_]+)\$c?(\d{4}\.\d{2}\.\d{2}-\d{2}\.\d{2}\.\d{2})`)

const (
	rawTimestampLayout     = "2006.01.02-15.04.05"
	displayTimestampLayout = "2006-01-02 15:04:05"
)

// steamSaveExt is the extension of individual save files in the
// directory-based layout.
const steamSaveExt = ".savegame"

// ExtractDetails returns every non-overlapping (name, timestamp) match in text,
// in order of appearance. Unparseable timestamps are kept verbatim.
func ExtractDetails(text string) []domain.SaveDetail {
	matches := detailRE.FindAllStringSubmatch(text, -1)
	details := make([]domain.SaveDetail, 0, len(matches))
	for _, m := range matches {
		details = append(details, domain.SaveDetail{
			Name:      m[1],
			Timestamp: FormatTimestamp(m[2]),
		})
	}
	return details
}

// FormatTimestamp converts "YYYY.MM.DD-HH.MM.SS" to "YYYY-MM-DD HH:MM:SS",
// returning raw unchanged when it does not parse.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(rawTimestampLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format(displayTimestampLayout)
}

// FirstContainer returns the lexically first index file in dir, or "" when
// there is none. dir is taken literally, never as a pattern.
func FirstContainer(fs afero.Fs, dir string) (string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return "", eris.Wrapf(err, "list %s", dir)
	}
	for _, fi := range infos {
		if fi.Mode().IsRegular() && IsContainerName(fi.Name()) {
			return filepath.Join(dir, fi.Name()), nil
		}
	}
	return "", nil
}

// Details extracts the save list of a package-layout folder from its first
// index file. A folder without an index file yields an empty list.
func Details(fs afero.Fs, dir string) ([]domain.SaveDetail, error) {
	path, err := FirstContainer(fs, dir)
	if err != nil || path == "" {
		return []domain.SaveDetail{}, err
	}
	text, err := ReadText(fs, path)
	if err != nil {
		return nil, err
	}
	return ExtractDetails(text), nil
}

// DirectoryDetails extracts the save list of a directory-layout folder. That
// layout has no index file; the save file names carry the same
// "<name>$<timestamp>" form, so the same pattern is applied to them.
func DirectoryDetails(fs afero.Fs, dir string) ([]domain.SaveDetail, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, eris.Wrapf(err, "list %s", dir)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.Mode().IsRegular() && strings.EqualFold(filepath.Ext(fi.Name()), steamSaveExt) {
			names = append(names, fi.Name())
		}
	}
	sort.Strings(names)
	return ExtractDetails(strings.Join(names, "\n")), nil
}
