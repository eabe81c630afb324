package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/astrosave/internal/domain"
)

// FormatDetails renders saves as "name (timestamp), name (timestamp)", or
// noSaves when the list is empty.
func FormatDetails(details []domain.SaveDetail, noSaves string) string {
	if len(details) == 0 {
		return noSaves
	}
	parts := make([]string, len(details))
	for i, d := range details {
		parts[i] = fmt.Sprintf("%s (%s)", d.Name, d.Timestamp)
	}
	return strings.Join(parts, ", ")
}

// MenuLine returns one 1-based menu entry (e.g. "2) SAVE_1 (2023-05-01 10:00:00)").
func MenuLine(index int, label string) string {
	return fmt.Sprintf("%d) %s", index, label)
}

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}
