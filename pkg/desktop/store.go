// Package desktop maintains the directory of .desktop launcher
// descriptors: one descriptor per integrated bundle, named
// {prefix}-{identifier}.desktop. The descriptor filename format is the
// external contract the launcher indexer and the reconciler both depend
// on, so it is produced and parsed only here.
package desktop

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/types"
)

// Extension is the descriptor filename extension
const Extension = ".desktop"

// Store reads and writes descriptors in a single directory
type Store struct {
	fs     types.FS
	dir    string
	prefix string
}

// NewStore creates a descriptor store over the given directory. prefix
// names the descriptors this store owns: {prefix}-{identifier}.desktop.
func NewStore(fs types.FS, dir, prefix string) *Store {
	return &Store{fs: fs, dir: dir, prefix: prefix}
}

// Dir returns the descriptor directory
func (s *Store) Dir() string {
	return s.dir
}

// Filename returns the descriptor filename for an identifier
func (s *Store) Filename(identifier string) string {
	return s.prefix + "-" + identifier + Extension
}

// Path returns the absolute descriptor path for an identifier
func (s *Store) Path(identifier string) string {
	return filepath.Join(s.dir, s.Filename(identifier))
}

// IdentifierOf strips the {prefix}- prefix and the descriptor extension
// from a descriptor filename
func (s *Store) IdentifierOf(filename string) string {
	name := strings.TrimSuffix(filename, Extension)
	return strings.TrimPrefix(name, s.prefix+"-")
}

// Enumerate lists the descriptor filenames this store owns, sorted. A
// missing directory yields an empty enumeration.
func (s *Store) Enumerate() ([]string, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read descriptor directory").
			WithDetail("path", s.dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, s.prefix+"-") && strings.HasSuffix(name, Extension) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Identifiers returns the identifiers of all descriptors in the store,
// in the enumeration order.
func (s *Store) Identifiers() ([]string, error) {
	names, err := s.Enumerate()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = s.IdentifierOf(name)
	}
	return ids, nil
}

// Write creates or overwrites the descriptor for an identifier. The
// descriptor directory is created on demand and the resulting file is
// marked executable, which the target desktop environment expects of
// trusted launcher entries.
func (s *Store) Write(identifier, content string) error {
	logger := logging.GetLogger("desktop.store")

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create descriptor directory").
			WithDetail("path", s.dir)
	}

	path := s.Path(identifier)
	if err := s.fs.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDescriptorWrite, "failed to write descriptor %s", s.Filename(identifier))
	}
	if err := s.fs.Chmod(path, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDescriptorWrite, "failed to mark descriptor %s executable", s.Filename(identifier))
	}

	logger.Debug().Str("path", path).Msg("Wrote descriptor")
	return nil
}

// Read returns the content of the descriptor for an identifier
func (s *Store) Read(identifier string) (string, error) {
	data, err := s.fs.ReadFile(s.Path(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrDescriptorNotFound, "no descriptor for %q", identifier).
				WithDetail("path", s.Path(identifier))
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read descriptor for %q", identifier)
	}
	return string(data), nil
}

// Delete removes the descriptor for an identifier, reporting whether a
// file was actually removed. A missing descriptor is not an error here;
// callers warn about it.
func (s *Store) Delete(identifier string) (bool, error) {
	err := s.fs.Remove(s.Path(identifier))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to delete descriptor for %q", identifier)
	}
	return true, nil
}
