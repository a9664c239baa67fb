// Package testutil provides shared test infrastructure: an in-memory
// types.FS with error injection, an isolated on-disk environment, and
// fakes for the external collaborators.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/filesystem"
	"github.com/arthur-debert/appin/pkg/types"
)

// TestEnvironment provides an isolated bundle/descriptor/icon directory
// layout under a temp dir, backed by the real filesystem
type TestEnvironment struct {
	BundleDir  string
	DesktopDir string
	IconDir    string
	FS         types.FS

	t *testing.T
}

// NewTestEnvironment creates an isolated test environment. The bundle,
// descriptor and icon directories exist but start empty.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		BundleDir:  filepath.Join(root, "Applications"),
		DesktopDir: filepath.Join(root, "applications"),
		IconDir:    filepath.Join(root, "icons"),
		FS:         filesystem.NewOS(),
		t:          t,
	}

	for _, dir := range []string{env.BundleDir, env.DesktopDir, env.IconDir} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	return env
}

// SetupBundle drops a bundle file into the bundle directory and returns
// its absolute path
func (e *TestEnvironment) SetupBundle(name string) string {
	e.t.Helper()
	path := filepath.Join(e.BundleDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte("bundle: "+name), 0644))
	return path
}

// SetupIcon drops an icon file next to the bundles and returns its path
func (e *TestEnvironment) SetupIcon(name string) string {
	e.t.Helper()
	path := filepath.Join(e.BundleDir, name)
	require.NoError(e.t, os.WriteFile(path, []byte("icon: "+name), 0644))
	return path
}

// SetupDescriptor drops a descriptor file into the descriptor directory
// and returns its path
func (e *TestEnvironment) SetupDescriptor(filename, content string) string {
	e.t.Helper()
	path := filepath.Join(e.DesktopDir, filename)
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// ReadDescriptor reads a descriptor by filename
func (e *TestEnvironment) ReadDescriptor(filename string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.DesktopDir, filename))
	require.NoError(e.t, err)
	return string(data)
}

// DescriptorExists reports whether a descriptor file exists
func (e *TestEnvironment) DescriptorExists(filename string) bool {
	_, err := os.Stat(filepath.Join(e.DesktopDir, filename))
	return err == nil
}
