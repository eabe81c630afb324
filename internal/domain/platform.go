// Package domain holds the value types and typed errors shared by the
// locator, scanner, selector and pipeline packages.
package domain

// Platform identifies a save storage convention.
type Platform string

const (
	PlatformMicrosoft Platform = "microsoft" // Package-based (Microsoft Store / Xbox app).
	PlatformSteam     Platform = "steam"     // Directory-based (Steam).
)

// Platforms lists every supported convention in detection order.
var Platforms = []Platform{PlatformMicrosoft, PlatformSteam}

// Label returns the human-facing name of the platform.
func (p Platform) Label() string {
	switch p {
	case PlatformMicrosoft:
		return "Microsoft/Xbox"
	case PlatformSteam:
		return "Steam"
	default:
		return string(p)
	}
}

// SaveDetail is one (save name, timestamp) pair extracted from a save folder.
// Timestamp is "YYYY-MM-DD HH:MM:SS" when the raw value parsed, otherwise the
// raw captured text.
type SaveDetail struct {
	Name      string
	Timestamp string
}
