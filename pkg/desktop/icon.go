package desktop

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/types"
)

// iconExtensions is the probe order for colocated icons; first match wins
var iconExtensions = []string{"png", "svg", "jpg", "jpeg"}

// IconInstaller probes for an icon colocated with a bundle and copies it
// into the icon directory. The source icon is never moved.
type IconInstaller struct {
	fs      types.FS
	iconDir string
}

// NewIconInstaller creates an icon installer targeting iconDir
func NewIconInstaller(fs types.FS, iconDir string) *IconInstaller {
	return &IconInstaller{fs: fs, iconDir: iconDir}
}

// Install looks for {fullBaseName}.{png,svg,jpg,jpeg} next to the bundle
// and copies the first match to {iconDir}/{fullBaseName}.{ext}. It
// returns the icon reference for the descriptor: the full base name
// without extension, per desktop-entry icon lookup convention. An empty
// reference means no icon was found, which is not an error.
func (i *IconInstaller) Install(bundleDir, fullBaseName string) (string, error) {
	logger := logging.GetLogger("desktop.icon")

	src, ext := i.probe(bundleDir, fullBaseName)
	if src == "" {
		logger.Debug().Str("base", fullBaseName).Msg("No colocated icon found")
		return "", nil
	}

	if err := i.fs.MkdirAll(i.iconDir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrDirCreate, "failed to create icon directory").
			WithDetail("path", i.iconDir)
	}

	dst := filepath.Join(i.iconDir, fullBaseName+"."+ext)
	data, err := i.fs.ReadFile(src)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIconCopy, "failed to read icon %s", src)
	}
	if err := i.fs.WriteFile(dst, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrIconCopy, "failed to copy icon to %s", dst)
	}

	logger.Debug().Str("src", src).Str("dst", dst).Msg("Installed icon")
	return fullBaseName, nil
}

// probe returns the first existing colocated icon and its extension
func (i *IconInstaller) probe(bundleDir, fullBaseName string) (string, string) {
	logger := logging.GetLogger("desktop.icon")

	for _, ext := range iconExtensions {
		candidate := filepath.Join(bundleDir, fullBaseName+"."+ext)
		info, err := i.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			if err != nil && !os.IsNotExist(err) {
				logger.Debug().Err(err).Str("path", candidate).Msg("Icon probe failed")
			}
			continue
		}
		return candidate, ext
	}
	return "", ""
}
