package types

import (
	"io/fs"
)

// FS is the filesystem interface required for appin operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Pattern expansion (filepath.Glob semantics)
	Glob(pattern string) ([]string, error)

	// Other operations
	Remove(name string) error
}

// Pather provides the directory layout appin operates on
type Pather interface {
	// BundleDir returns the directory holding AppImage bundles
	BundleDir() string

	// DesktopDir returns the directory holding .desktop descriptors
	DesktopDir() string

	// IconDir returns the directory icons are copied into
	IconDir() string

	// ConfigDir returns the XDG config directory for appin
	ConfigDir() string

	// StateDir returns the XDG state directory for appin
	StateDir() string
}
