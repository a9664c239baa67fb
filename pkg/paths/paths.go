// Package paths provides centralized path handling for appin.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/appin/pkg/errors"
)

// Default directories and files
const (
	// AppinDirName is the directory name for appin-specific files
	AppinDirName = "appin"

	// DefaultBundleDirName is the directory under $HOME holding AppImage bundles
	DefaultBundleDirName = "Applications"

	// ApplicationsDirName is the launcher descriptor directory under XDG data
	ApplicationsDirName = "applications"

	// IconsDirName is the icon directory under XDG data
	IconsDirName = "icons"

	// LogFileName is the name of the log file
	LogFileName = "appin.log"
)

// Paths provides centralized path management for appin
type Paths struct {
	bundleDir  string
	desktopDir string
	iconDir    string
	xdgConfig  string
	xdgState   string
}

// New creates a new Paths instance. Empty arguments fall back to the
// defaults: ~/Applications for bundles, $XDG_DATA_HOME/applications for
// descriptors and $XDG_DATA_HOME/icons for icons. All directories are
// expanded and made absolute.
func New(bundleDir, desktopDir, iconDir string) (*Paths, error) {
	p := &Paths{
		bundleDir:  bundleDir,
		desktopDir: desktopDir,
		iconDir:    iconDir,
	}

	if p.bundleDir == "" {
		p.bundleDir = DefaultBundleDir()
	}
	if p.desktopDir == "" {
		p.desktopDir = DefaultDesktopDir()
	}
	if p.iconDir == "" {
		p.iconDir = DefaultIconDir()
	}

	for _, dir := range []*string{&p.bundleDir, &p.desktopDir, &p.iconDir} {
		abs, err := filepath.Abs(ExpandHome(*dir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	p.xdgConfig = DefaultConfigDir()
	p.xdgState = DefaultStateDir()

	return p, nil
}

// DefaultBundleDir returns ~/Applications, the conventional location for
// AppImage bundles.
func DefaultBundleDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultBundleDirName
	}
	return filepath.Join(home, DefaultBundleDirName)
}

// DefaultDesktopDir returns the launcher descriptor directory,
// $XDG_DATA_HOME/applications.
func DefaultDesktopDir() string {
	return filepath.Join(xdg.DataHome, ApplicationsDirName)
}

// DefaultIconDir returns the icon directory, $XDG_DATA_HOME/icons.
func DefaultIconDir() string {
	return filepath.Join(xdg.DataHome, IconsDirName)
}

// DefaultConfigDir returns the appin config directory,
// $XDG_CONFIG_HOME/appin.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppinDirName)
}

// DefaultStateDir returns the appin state directory,
// $XDG_STATE_HOME/appin.
func DefaultStateDir() string {
	return stateHome()
}

// DefaultLogFilePath returns the appin log file path under the state
// directory.
func DefaultLogFilePath() string {
	return filepath.Join(stateHome(), LogFileName)
}

// stateHome resolves the XDG state directory for appin.
// XDG doesn't always provide StateHome, so we check manually.
func stateHome() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, AppinDirName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", AppinDirName)
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// BundleDir returns the directory holding AppImage bundles
func (p *Paths) BundleDir() string {
	return p.bundleDir
}

// DesktopDir returns the directory holding .desktop descriptors
func (p *Paths) DesktopDir() string {
	return p.desktopDir
}

// IconDir returns the directory icons are copied into
func (p *Paths) IconDir() string {
	return p.iconDir
}

// ConfigDir returns the XDG config directory for appin
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for appin
func (p *Paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the appin log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
