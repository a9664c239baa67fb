package system

import (
	"github.com/arthur-debert/appin/pkg/errors"
	"github.com/arthur-debert/appin/pkg/logging"
)

// LauncherIndex refreshes the desktop environment's launcher database so
// it picks up descriptor changes
type LauncherIndex interface {
	Refresh(desktopDir string) error
}

// desktopDatabase refreshes the index via update-desktop-database
type desktopDatabase struct {
	runner Runner
}

// NewLauncherIndex creates the default launcher index refresher
func NewLauncherIndex(runner Runner) LauncherIndex {
	return &desktopDatabase{runner: runner}
}

// Refresh runs update-desktop-database on the descriptor directory. It
// is invoked once per batch of descriptor mutations, never per bundle.
func (d *desktopDatabase) Refresh(desktopDir string) error {
	logger := logging.GetLogger("system.launcher")
	logger.Debug().Str("dir", desktopDir).Msg("Refreshing launcher index")

	if _, err := d.runner.Run("update-desktop-database", desktopDir); err != nil {
		return errors.Wrap(err, errors.ErrLauncherIndex, "failed to refresh launcher index")
	}
	return nil
}
