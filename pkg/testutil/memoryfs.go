package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports
// per-path error injection so tests can exercise write-failure paths
// without touching a real filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection: operations on these paths fail with the mapped error
	errorPaths map[string]error
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem with a root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every operation on path fail with err
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return nil, err
	}
	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// Stat implements types.FS
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	return &memFileInfo{node: node}, nil
}

// ReadFile implements types.FS
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

// WriteFile implements types.FS. The parent directory must exist, as
// with os.WriteFile.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.checkError(name); err != nil {
		return err
	}

	parent, exists := m.files[filepath.Dir(name)]
	if !exists || !parent.isDir {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[name] = &fileNode{
		name:    filepath.Base(name),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

// Chmod implements types.FS
func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, err := m.getNode(name)
	if err != nil {
		return err
	}
	node.mode = mode
	return nil
}

// MkdirAll implements types.FS
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return err
	}

	var build string
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == "" {
			build = "/"
			continue
		}
		build = filepath.Join(build, part)
		if node, exists := m.files[build]; exists {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: build, Err: fs.ErrExist}
			}
			continue
		}
		m.files[build] = &fileNode{
			name:    part,
			mode:    perm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

// ReadDir implements types.FS
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	name = filepath.Clean(name)
	var entries []fs.DirEntry
	for path, node := range m.files {
		if path != name && filepath.Dir(path) == name {
			entries = append(entries, &memDirEntry{node: node})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// Glob implements types.FS with filepath.Match semantics on the
// pattern's final element
func (m *MemoryFS) Glob(pattern string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir := filepath.Dir(pattern)
	base := filepath.Base(pattern)

	var matches []string
	for path := range m.files {
		if filepath.Dir(path) != filepath.Clean(dir) {
			continue
		}
		ok, err := filepath.Match(base, filepath.Base(path))
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, path)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// Remove implements types.FS
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.checkError(name); err != nil {
		return err
	}
	if _, exists := m.files[name]; !exists {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

// memFileInfo adapts a fileNode to fs.FileInfo
type memFileInfo struct {
	node *fileNode
}

func (i *memFileInfo) Name() string       { return i.node.name }
func (i *memFileInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memFileInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memFileInfo) ModTime() time.Time { return i.node.modTime }
func (i *memFileInfo) IsDir() bool        { return i.node.isDir }
func (i *memFileInfo) Sys() interface{}   { return nil }

// memDirEntry adapts a fileNode to fs.DirEntry
type memDirEntry struct {
	node *fileNode
}

func (e *memDirEntry) Name() string               { return e.node.name }
func (e *memDirEntry) IsDir() bool                { return e.node.isDir }
func (e *memDirEntry) Type() fs.FileMode          { return e.node.mode.Type() }
func (e *memDirEntry) Info() (fs.FileInfo, error) { return &memFileInfo{node: e.node}, nil }
