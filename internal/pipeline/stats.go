package pipeline

import "time"

// Stats tracks the counters of one discovery run.
type Stats struct {
	Roots      int // Roots returned by the locator.
	Scanned    int // Roots kept by the root policy.
	Candidates int // Save folders found under the scanned roots.
	Elapsed    time.Duration
}

// Ambiguous reports whether the user has to choose between candidates.
func (s Stats) Ambiguous() bool {
	return s.Candidates > 1
}
