// Package container reads the per-directory binary index files ("container.N")
// that the package-based build writes next to its save blobs.
//
// The files are opaque; the only structure relied on is that they embed
// UTF-16LE strings of the form "<save name>$[c]YYYY.MM.DD-HH.MM.SS".
// [Scanner] uses the date part as a marker to pick out save folders, and
// [Details] extracts the (name, timestamp) pairs used to label them.
package container
