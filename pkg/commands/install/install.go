// Package install ensures the FUSE runtime package AppImages depend on
// is present.
package install

import (
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/system"
)

// Options defines the options for the InstallRuntime command
type Options struct {
	Packages system.PackageManager

	// Package is the OS package name to ensure, e.g. libfuse2
	Package string
}

// Result reports what the command did
type Result struct {
	Package          string
	AlreadyInstalled bool
	Installed        bool
}

// InstallRuntime installs the runtime package unless it is already
// present
func InstallRuntime(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.install")
	logger.Debug().Str("package", opts.Package).Msg("Executing command")

	result := &Result{Package: opts.Package}

	installed, err := opts.Packages.IsInstalled(opts.Package)
	if err != nil {
		return nil, err
	}
	if installed {
		result.AlreadyInstalled = true
		logger.Info().Str("package", opts.Package).Msg("Package already installed")
		return result, nil
	}

	if err := opts.Packages.Install(opts.Package); err != nil {
		return nil, err
	}
	result.Installed = true

	logger.Info().Str("package", opts.Package).Msg("Command finished")
	return result, nil
}
