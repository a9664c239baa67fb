package create_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/commands/create"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/testutil"
)

type fixture struct {
	env     *testutil.TestEnvironment
	bundles *appimage.Store
	index   *testutil.FakeLauncherIndex
	opts    create.Options
}

func setup(t *testing.T) *fixture {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	bundles := appimage.NewStore(env.FS, env.BundleDir, ".AppImage")
	store := desktop.NewStore(env.FS, env.DesktopDir, "appimage")
	icons := desktop.NewIconInstaller(env.FS, env.IconDir)
	index := &testutil.FakeLauncherIndex{}
	return &fixture{
		env:     env,
		bundles: bundles,
		index:   index,
		opts: create.Options{
			Bundles:    bundles,
			Writer:     desktop.NewWriter(store, icons),
			Index:      index,
			DesktopDir: env.DesktopDir,
		},
	}
}

func TestCreateAll(t *testing.T) {
	f := setup(t)
	f.env.SetupBundle("Foo-1.2.AppImage")
	f.env.SetupBundle("Bar-3.AppImage")

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, "Bar-3.AppImage", result.Created[0].Bundle.Name)
	assert.Equal(t, "Foo-1.2.AppImage", result.Created[1].Bundle.Name)

	assert.True(t, f.env.DescriptorExists("appimage-Foo.desktop"))
	assert.True(t, f.env.DescriptorExists("appimage-Bar.desktop"))

	content := f.env.ReadDescriptor("appimage-Foo.desktop")
	assert.Contains(t, content, "Name=Foo\n")
}

func TestCreateWithToken(t *testing.T) {
	f := setup(t)
	f.env.SetupBundle("Foo-1.2.AppImage")
	f.env.SetupBundle("Bar-3.AppImage")
	f.opts.Tokens = []string{"foo"}

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Equal(t, "Foo-1.2.AppImage", result.Created[0].Bundle.Name)
	assert.False(t, f.env.DescriptorExists("appimage-Bar.desktop"))
}

func TestCreateUnmatchedTokenWarns(t *testing.T) {
	f := setup(t)
	f.env.SetupBundle("Foo-1.2.AppImage")
	f.opts.Tokens = []string{"ghost", "foo"}

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"ghost"`)
}

func TestCreateDeduplicatesOverlappingTokens(t *testing.T) {
	f := setup(t)
	path := f.env.SetupBundle("Foo-1.2.AppImage")
	// Both tokens resolve to the same bundle: a prefix query and the
	// literal absolute path
	f.opts.Tokens = []string{"foo", path}

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Created, 1)
}

func TestCreateRefreshesIndexOnce(t *testing.T) {
	f := setup(t)
	f.env.SetupBundle("Foo-1.2.AppImage")
	f.env.SetupBundle("Bar-3.AppImage")

	_, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	assert.Equal(t, []string{f.env.DesktopDir}, f.index.Refreshed)
}

func TestCreateSkipsRefreshWhenNothingWritten(t *testing.T) {
	f := setup(t)

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, f.index.Refreshed)
}

func TestCreateRefreshFailureIsWarning(t *testing.T) {
	f := setup(t)
	f.env.SetupBundle("Foo-1.2.AppImage")
	f.index.Err = assert.AnError

	result, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "index refresh failed")
}

func TestCreateWriteFailureAborts(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/apps", 0755))
	require.NoError(t, fs.WriteFile("/apps/Foo-1.2.AppImage", []byte("elf"), 0644))
	require.NoError(t, fs.WriteFile("/apps/Zed-1.AppImage", []byte("elf"), 0644))
	fs.InjectError("/share/applications/appimage-Foo.desktop", assert.AnError)

	store := desktop.NewStore(fs, "/share/applications", "appimage")
	icons := desktop.NewIconInstaller(fs, "/share/icons")
	index := &testutil.FakeLauncherIndex{}

	_, err := create.CreateDesktops(create.Options{
		Bundles:    appimage.NewStore(fs, "/apps", ".AppImage"),
		Writer:     desktop.NewWriter(store, icons),
		Index:      index,
		DesktopDir: "/share/applications",
	})

	require.Error(t, err)
	// A failed batch leaves the index alone
	assert.Empty(t, index.Refreshed)
}

func TestCreateMarksBundleExecutable(t *testing.T) {
	f := setup(t)
	path := f.env.SetupBundle("Foo-1.2.AppImage")

	_, err := create.CreateDesktops(f.opts)

	require.NoError(t, err)
	info, err := f.env.FS.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111)
}
