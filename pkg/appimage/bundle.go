// Package appimage discovers and resolves AppImage bundles on disk.
package appimage

import (
	"path/filepath"

	"github.com/arthur-debert/appin/pkg/naming"
)

// Bundle is an AppImage file found on disk. Bundles are pre-existing:
// appin reads their path and name and toggles the executable bit, but
// never creates or deletes them.
type Bundle struct {
	// Path is the absolute path to the bundle file
	Path string

	// Name is the bundle's filename
	Name string
}

// NewBundle builds a Bundle from an absolute path
func NewBundle(path string) Bundle {
	return Bundle{
		Path: path,
		Name: filepath.Base(path),
	}
}

// ID returns the bundle's canonical short identifier,
// e.g. "Foo-1.2.AppImage" -> "Foo"
func (b Bundle) ID() string {
	return naming.Derive(b.Name)
}

// FullBaseName returns the filename with its extension removed,
// e.g. "Foo-1.2.AppImage" -> "Foo-1.2"
func (b Bundle) FullBaseName() string {
	return naming.FullBaseName(b.Name)
}
