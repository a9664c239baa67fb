package system

import (
	"os"
	"strings"

	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/logging"
)

// PackageManager queries and installs OS packages
type PackageManager interface {
	// IsInstalled reports whether the named package is installed
	IsInstalled(name string) (bool, error)

	// Install installs the named package
	Install(name string) error
}

// aptManager implements PackageManager for Debian-style systems
type aptManager struct {
	runner Runner
}

// NewPackageManager creates the default (apt/dpkg based) package manager
func NewPackageManager(runner Runner) PackageManager {
	return &aptManager{runner: runner}
}

func (m *aptManager) IsInstalled(name string) (bool, error) {
	out, err := m.runner.Run("dpkg-query", "-W", "-f=${Status}", name)
	if err != nil {
		// dpkg-query exits non-zero for unknown packages
		return false, nil
	}
	return strings.Contains(out, "install ok installed"), nil
}

func (m *aptManager) Install(name string) error {
	logger := logging.GetLogger("system.packages")
	logger.Info().Str("package", name).Msg("Installing package")

	args := []string{"apt-get", "install", "-y", name}
	if os.Geteuid() != 0 {
		args = append([]string{"sudo"}, args...)
	}

	if _, err := m.runner.Run(args[0], args[1:]...); err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "failed to install package %s", name)
	}
	return nil
}
