// Package naming derives the canonical short identifier from a bundle
// filename. Every part of appin that needs an identifier (descriptor
// naming, reconciliation, lookup by name) goes through Derive so a single
// separator policy applies everywhere.
package naming

import (
	"path/filepath"
	"strings"
)

// Separators that end the short identifier. Both hyphen and underscore
// terminate it: "Foo-1.2.AppImage" and "Foo_1.2.AppImage" both derive "Foo".
const separators = "-_"

// FullBaseName returns the filename with its final extension removed.
// "Foo-1.2.AppImage" -> "Foo-1.2". A name without an extension is
// returned unchanged.
func FullBaseName(filename string) string {
	filename = filepath.Base(filename)
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext)
}

// Derive returns the short identifier for a bundle filename: the full
// base name truncated at the first separator. A name without a separator
// derives its full base name. A name that starts with a separator derives
// the empty string; callers treat that as a degenerate name, not an error.
func Derive(filename string) string {
	base := FullBaseName(filename)
	if idx := strings.IndexAny(base, separators); idx >= 0 {
		return base[:idx]
	}
	return base
}
