package appimage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/paths"
	"github.com/arthur-debert/appin/pkg/types"
)

// Store enumerates and resolves bundles in a single directory
type Store struct {
	fs  types.FS
	dir string
	ext string
}

// NewStore creates a bundle store over the given directory. ext is the
// bundle filename extension including the dot (".AppImage"); it is
// matched case-insensitively.
func NewStore(fs types.FS, dir, ext string) *Store {
	return &Store{fs: fs, dir: dir, ext: ext}
}

// Dir returns the bundle directory
func (s *Store) Dir() string {
	return s.dir
}

// Enumerate lists the bundles directly inside the store's directory,
// sorted lexicographically by filename. A missing directory yields an
// empty enumeration: the directory may simply not have been created yet.
func (s *Store) Enumerate() ([]Bundle, error) {
	logger := logging.GetLogger("appimage.store")

	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("dir", s.dir).Msg("Bundle directory does not exist")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrBundleAccess, "cannot read bundle directory").
			WithDetail("path", s.dir)
	}

	var bundles []Bundle
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.hasBundleExt(entry.Name()) {
			continue
		}
		bundles = append(bundles, NewBundle(filepath.Join(s.dir, entry.Name())))
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Name < bundles[j].Name
	})

	logger.Debug().Int("count", len(bundles)).Str("dir", s.dir).Msg("Enumerated bundles")
	return bundles, nil
}

// Resolve expands a user-supplied token into bundles. A token containing
// a path separator or ending in the bundle extension is expanded as a
// literal path or glob; anything else is a case-insensitive prefix query
// against the store's directory. An empty result is not an error: the
// caller reports a warning and continues.
func (s *Store) Resolve(token string) ([]Bundle, error) {
	logger := logging.GetLogger("appimage.store")

	if strings.ContainsRune(token, filepath.Separator) || s.hasBundleExt(token) {
		return s.resolvePath(token)
	}

	all, err := s.Enumerate()
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(token)
	var matched []Bundle
	for _, b := range all {
		if strings.HasPrefix(strings.ToLower(b.Name), lowered) {
			matched = append(matched, b)
		}
	}

	logger.Debug().Str("token", token).Int("matches", len(matched)).Msg("Resolved bundle token")
	return matched, nil
}

// resolvePath expands a literal path or glob pattern into bundles
func (s *Store) resolvePath(token string) ([]Bundle, error) {
	pattern, err := paths.NormalizePath(token)
	if err != nil {
		return nil, err
	}

	matches, err := s.fs.Glob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad bundle pattern %s", token)
	}

	var bundles []Bundle
	for _, m := range matches {
		info, err := s.fs.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		bundles = append(bundles, NewBundle(m))
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Name < bundles[j].Name
	})
	return bundles, nil
}

// MarkExecutable sets the executable permission bits on a bundle so the
// launcher can run it directly.
func (s *Store) MarkExecutable(b Bundle) error {
	if err := s.fs.Chmod(b.Path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrBundleAccess, "failed to mark %s executable", b.Name)
	}
	return nil
}

func (s *Store) hasBundleExt(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(s.ext))
}
