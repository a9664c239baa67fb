package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/commands/list"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/testutil"
)

func setup(t *testing.T) (*testutil.TestEnvironment, list.Options) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	return env, list.Options{
		Bundles:     appimage.NewStore(env.FS, env.BundleDir, ".AppImage"),
		Descriptors: desktop.NewStore(env.FS, env.DesktopDir, "appimage"),
	}
}

func TestListPartitionsBundles(t *testing.T) {
	env, opts := setup(t)
	env.SetupBundle("Foo-1.2.AppImage")
	env.SetupBundle("Bar-3.AppImage")
	env.SetupBundle("Baz_4.AppImage")
	env.SetupDescriptor("appimage-Foo.desktop", "[Desktop Entry]\n")
	env.SetupDescriptor("appimage-Baz.desktop", "[Desktop Entry]\n")

	result, err := list.ListBundles(opts)

	require.NoError(t, err)
	require.Len(t, result.Matched, 2)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "Baz_4.AppImage", result.Matched[0].Name)
	assert.Equal(t, "Foo-1.2.AppImage", result.Matched[1].Name)
	assert.Equal(t, "Bar-3.AppImage", result.Unmatched[0].Name)
	assert.Equal(t, 3, result.Total())
}

func TestListIgnoresForeignDescriptors(t *testing.T) {
	env, opts := setup(t)
	env.SetupBundle("Foo-1.2.AppImage")
	env.SetupDescriptor("firefox.desktop", "[Desktop Entry]\n")

	result, err := list.ListBundles(opts)

	require.NoError(t, err)
	assert.Empty(t, result.Matched)
	assert.Len(t, result.Unmatched, 1)
}

func TestListEmptyBundleDir(t *testing.T) {
	env, opts := setup(t)
	env.SetupDescriptor("appimage-Orphan.desktop", "[Desktop Entry]\n")

	result, err := list.ListBundles(opts)

	require.NoError(t, err)
	assert.Zero(t, result.Total())
}
