package domain

// RootPolicy decides which package root(s) to scan when the vendor wildcard
// matches more than one installation.
type RootPolicy string

const (
	RootsLast   RootPolicy = "last"   // Last enumerated match (default, historical behavior).
	RootsNewest RootPolicy = "newest" // Most recently modified match.
	RootsAll    RootPolicy = "all"    // Scan every match and merge the candidates.
)
