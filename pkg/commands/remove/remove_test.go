package remove_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/commands/remove"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/testutil"
)

func setup(t *testing.T) (*testutil.TestEnvironment, *testutil.FakeLauncherIndex, remove.Options) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	index := &testutil.FakeLauncherIndex{}
	return env, index, remove.Options{
		Descriptors: desktop.NewStore(env.FS, env.DesktopDir, "appimage"),
		Index:       index,
	}
}

func TestRemoveDesktop(t *testing.T) {
	env, index, opts := setup(t)
	env.SetupDescriptor("appimage-Foo.desktop", "[Desktop Entry]\n")
	opts.Name = "Foo"

	result, err := remove.RemoveDesktop(opts)

	require.NoError(t, err)
	assert.True(t, result.Removed)
	assert.False(t, env.DescriptorExists("appimage-Foo.desktop"))
	assert.Equal(t, []string{env.DesktopDir}, index.Refreshed)
}

func TestRemoveDesktopMissing(t *testing.T) {
	_, index, opts := setup(t)
	opts.Name = "Ghost"

	result, err := remove.RemoveDesktop(opts)

	require.NoError(t, err)
	assert.False(t, result.Removed)
	// No removal, no refresh
	assert.Empty(t, index.Refreshed)
}

func TestRemoveRefreshFailureIsWarning(t *testing.T) {
	env, index, opts := setup(t)
	env.SetupDescriptor("appimage-Foo.desktop", "[Desktop Entry]\n")
	index.Err = assert.AnError
	opts.Name = "Foo"

	result, err := remove.RemoveDesktop(opts)

	require.NoError(t, err)
	assert.True(t, result.Removed)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "index refresh failed")
}
