package desktop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/testutil"
)

func newDescriptorStore(t *testing.T) (*desktop.Store, *testutil.MemoryFS) {
	t.Helper()
	fs := testutil.NewMemoryFS()
	return desktop.NewStore(fs, "/share/applications", "appimage"), fs
}

func TestFilenameAndPath(t *testing.T) {
	store, _ := newDescriptorStore(t)

	assert.Equal(t, "appimage-Foo.desktop", store.Filename("Foo"))
	assert.Equal(t, "/share/applications/appimage-Foo.desktop", store.Path("Foo"))
}

func TestIdentifierOf(t *testing.T) {
	store, _ := newDescriptorStore(t)

	assert.Equal(t, "Foo", store.IdentifierOf("appimage-Foo.desktop"))
	// Hyphens past the prefix belong to the identifier
	assert.Equal(t, "My-App", store.IdentifierOf("appimage-My-App.desktop"))
}

func TestStoreWriteCreatesDirAndMarksExecutable(t *testing.T) {
	store, fs := newDescriptorStore(t)

	require.NoError(t, store.Write("Foo", "[Desktop Entry]\n"))

	info, err := fs.Stat("/share/applications/appimage-Foo.desktop")
	require.NoError(t, err)
	assert.Equal(t, "-rwxr-xr-x", info.Mode().String())

	data, err := fs.ReadFile("/share/applications/appimage-Foo.desktop")
	require.NoError(t, err)
	assert.Equal(t, "[Desktop Entry]\n", string(data))
}

func TestStoreWriteOverwrites(t *testing.T) {
	store, fs := newDescriptorStore(t)
	require.NoError(t, store.Write("Foo", "old"))

	require.NoError(t, store.Write("Foo", "new"))

	data, err := fs.ReadFile("/share/applications/appimage-Foo.desktop")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestStoreWriteFailurePropagates(t *testing.T) {
	store, fs := newDescriptorStore(t)
	fs.InjectError("/share/applications/appimage-Foo.desktop", assert.AnError)

	err := store.Write("Foo", "content")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDescriptorWrite))
}

func TestEnumerateFiltersForeignFiles(t *testing.T) {
	store, fs := newDescriptorStore(t)
	require.NoError(t, fs.MkdirAll("/share/applications", 0755))
	require.NoError(t, fs.WriteFile("/share/applications/appimage-Zed.desktop", []byte("z"), 0644))
	require.NoError(t, fs.WriteFile("/share/applications/appimage-Alpha.desktop", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("/share/applications/firefox.desktop", []byte("f"), 0644))
	require.NoError(t, fs.WriteFile("/share/applications/appimage-notes.txt", []byte("n"), 0644))

	names, err := store.Enumerate()

	require.NoError(t, err)
	assert.Equal(t, []string{"appimage-Alpha.desktop", "appimage-Zed.desktop"}, names)
}

func TestEnumerateMissingDirectoryIsEmpty(t *testing.T) {
	store, _ := newDescriptorStore(t)

	names, err := store.Enumerate()

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestIdentifiers(t *testing.T) {
	store, _ := newDescriptorStore(t)
	require.NoError(t, store.Write("Beta", "b"))
	require.NoError(t, store.Write("Alpha", "a"))

	ids, err := store.Identifiers()

	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, ids)
}

func TestReadMissingDescriptor(t *testing.T) {
	store, _ := newDescriptorStore(t)

	_, err := store.Read("Ghost")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDescriptorNotFound))
}

func TestReadRoundTrip(t *testing.T) {
	store, _ := newDescriptorStore(t)
	require.NoError(t, store.Write("Foo", "content"))

	content, err := store.Read("Foo")

	require.NoError(t, err)
	assert.Equal(t, "content", content)
}

func TestDelete(t *testing.T) {
	store, _ := newDescriptorStore(t)
	require.NoError(t, store.Write("Foo", "content"))

	removed, err := store.Delete("Foo")
	require.NoError(t, err)
	assert.True(t, removed)

	// Second delete finds nothing and reports that without erroring
	removed, err = store.Delete("Foo")
	require.NoError(t, err)
	assert.False(t, removed)
}
