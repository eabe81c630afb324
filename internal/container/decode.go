package container

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FilePrefix is the literal name prefix of index files.
const FilePrefix = "container."

// IsContainerName reports whether a base file name denotes an index file.
func IsContainerName(name string) bool {
	return strings.HasPrefix(name, FilePrefix)
}

// Decode interprets raw as UTF-16LE regardless of its actual content. Unpaired
// surrogates and a trailing odd byte become U+FFFD; decoding never fails.
func Decode(raw []byte) string {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	// The decoder substitutes U+FFFD for malformed input instead of failing.
	text, _, _ := transform.Bytes(dec, raw)
	return string(text)
}

// ReadText reads the file at path once and decodes it.
func ReadText(fs afero.Fs, path string) (string, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", eris.Wrapf(err, "read container %s", path)
	}
	return Decode(raw), nil
}
