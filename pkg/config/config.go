// Package config loads appin's settings: built-in defaults, an optional
// user config file and APPIN_* environment variables, merged in that
// order. The resolved Settings struct is passed explicitly to every
// component; nothing reads configuration ambiently.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	appinerrors "github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for environment variable overrides,
// e.g. APPIN_BUNDLE_DIR or APPIN_PREFIX.
const EnvPrefix = "APPIN_"

// Settings holds the resolved configuration for a run
type Settings struct {
	// BundleDir is the directory scanned for AppImage bundles
	BundleDir string `koanf:"bundle_dir" toml:"bundle_dir"`

	// DesktopDir is the directory launcher descriptors are written to
	DesktopDir string `koanf:"desktop_dir" toml:"desktop_dir"`

	// IconDir is the directory icons are copied into
	IconDir string `koanf:"icon_dir" toml:"icon_dir"`

	// Prefix names descriptors: {prefix}-{identifier}.desktop
	Prefix string `koanf:"prefix" toml:"prefix"`

	// BundleExtension identifies bundle files, matched case-insensitively
	BundleExtension string `koanf:"bundle_extension" toml:"bundle_extension"`

	// RuntimePackage is the OS package installed by --install-libfuse2
	RuntimePackage string `koanf:"runtime_package" toml:"runtime_package"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves settings from defaults, the user config file (if any)
// and environment variables.
func Load() (*Settings, error) {
	return LoadFrom(userConfigCandidates())
}

// LoadFrom resolves settings, trying the given config file candidates in
// order; the first one that exists is loaded. Exposed for tests.
func LoadFrom(candidates []string) (*Settings, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, appinerrors.Wrap(err, appinerrors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, TOML or YAML
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, appinerrors.Wrapf(err, appinerrors.ErrConfigLoad, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment overrides: APPIN_BUNDLE_DIR -> bundle_dir
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, appinerrors.Wrap(err, appinerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, appinerrors.Wrap(err, appinerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	applyDefaults(&s)
	return &s, nil
}

// Default returns the built-in settings with directory defaults resolved,
// ignoring config files and the environment.
func Default() *Settings {
	s := &Settings{}
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err == nil {
		_ = k.Unmarshal("", s)
	}
	applyDefaults(s)
	return s
}

// applyDefaults fills empty directory settings with the XDG-based defaults
func applyDefaults(s *Settings) {
	if s.BundleDir == "" {
		s.BundleDir = paths.DefaultBundleDir()
	}
	if s.DesktopDir == "" {
		s.DesktopDir = paths.DefaultDesktopDir()
	}
	if s.IconDir == "" {
		s.IconDir = paths.DefaultIconDir()
	}
	if s.Prefix == "" {
		s.Prefix = "appimage"
	}
	if s.BundleExtension == "" {
		s.BundleExtension = ".AppImage"
	}
	if s.RuntimePackage == "" {
		s.RuntimePackage = "libfuse2"
	}
}

// userConfigCandidates returns the config file paths tried in order
func userConfigCandidates() []string {
	configDir := paths.DefaultConfigDir()
	return []string{
		filepath.Join(configDir, "appin.toml"),
		filepath.Join(configDir, "appin.yaml"),
		filepath.Join(configDir, "appin.yml"),
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, appinerrors.Newf(appinerrors.ErrConfigLoad, "unsupported config format: %s", path)
	}
}
