package system_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/system"
	"github.com/arthur-debert/appin/pkg/testutil"
)

func runningAsRoot() bool {
	return os.Geteuid() == 0
}

func TestIsInstalled(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Outputs["dpkg-query"] = "install ok installed"
	pm := system.NewPackageManager(runner)

	installed, err := pm.IsInstalled("libfuse2")

	require.NoError(t, err)
	assert.True(t, installed)

	calls := runner.CallsTo("dpkg-query")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"dpkg-query", "-W", "-f=${Status}", "libfuse2"}, calls[0])
}

func TestIsInstalled_DeinstallState(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Outputs["dpkg-query"] = "deinstall ok config-files"
	pm := system.NewPackageManager(runner)

	installed, err := pm.IsInstalled("libfuse2")

	require.NoError(t, err)
	assert.False(t, installed)
}

func TestIsInstalled_UnknownPackage(t *testing.T) {
	runner := testutil.NewFakeRunner()
	// dpkg-query exits non-zero when the package is not in the database
	runner.Errs["dpkg-query"] = assert.AnError
	pm := system.NewPackageManager(runner)

	installed, err := pm.IsInstalled("no-such-package")

	require.NoError(t, err)
	assert.False(t, installed)
}

func TestInstallFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	name := "apt-get"
	if !runningAsRoot() {
		name = "sudo"
	}
	runner.Errs[name] = assert.AnError
	pm := system.NewPackageManager(runner)

	err := pm.Install("libfuse2")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageInstall))
}

func TestInstallInvokesAptGet(t *testing.T) {
	runner := testutil.NewFakeRunner()
	pm := system.NewPackageManager(runner)

	require.NoError(t, pm.Install("libfuse2"))

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	// Non-root runs go through sudo
	if !runningAsRoot() {
		assert.Equal(t, "sudo", call[0])
		call = call[1:]
	}
	assert.Equal(t, []string{"apt-get", "install", "-y", "libfuse2"}, call)
}

func TestLauncherIndexRefresh(t *testing.T) {
	runner := testutil.NewFakeRunner()
	index := system.NewLauncherIndex(runner)

	require.NoError(t, index.Refresh("/share/applications"))

	calls := runner.CallsTo("update-desktop-database")
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"update-desktop-database", "/share/applications"}, calls[0])
}

func TestLauncherIndexRefreshFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.Errs["update-desktop-database"] = assert.AnError
	index := system.NewLauncherIndex(runner)

	err := index.Refresh("/share/applications")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLauncherIndex))
}
