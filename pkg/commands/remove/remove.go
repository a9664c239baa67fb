// Package remove implements deleting a bundle's descriptor.
package remove

import (
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/system"
)

// Options defines the options for the RemoveDesktop command
type Options struct {
	Descriptors *desktop.Store

	// Index is refreshed after a successful removal; nil skips it
	Index system.LauncherIndex

	// Name is the identifier whose descriptor is removed
	Name string
}

// Result reports whether a descriptor was actually removed
type Result struct {
	Removed bool
	Path    string

	// Warnings are non-fatal problems, e.g. a failed index refresh
	Warnings []string
}

// RemoveDesktop deletes the descriptor for an identifier. A missing
// descriptor is reported through Removed=false, not an error; the
// launcher index is refreshed only when a file actually went away.
func RemoveDesktop(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.remove")
	logger.Debug().Str("name", opts.Name).Msg("Executing command")

	removed, err := opts.Descriptors.Delete(opts.Name)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Removed: removed,
		Path:    opts.Descriptors.Path(opts.Name),
	}

	if removed && opts.Index != nil {
		if err := opts.Index.Refresh(opts.Descriptors.Dir()); err != nil {
			result.Warnings = append(result.Warnings, "launcher index refresh failed: "+err.Error())
		}
	}

	logger.Info().Bool("removed", removed).Msg("Command finished")
	return result, nil
}
