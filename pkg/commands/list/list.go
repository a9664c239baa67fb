// Package list implements the reconciliation report: which bundles have
// a descriptor and which do not.
package list

import (
	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/reconcile"
)

// Options defines the options for the ListBundles command
type Options struct {
	Bundles     *appimage.Store
	Descriptors *desktop.Store
}

// Result is the reconciliation report
type Result struct {
	// Matched bundles have a descriptor for their identifier
	Matched []appimage.Bundle

	// Unmatched bundles do not
	Unmatched []appimage.Bundle
}

// Total returns the number of bundles covered by the report
func (r *Result) Total() int {
	return len(r.Matched) + len(r.Unmatched)
}

// ListBundles enumerates bundles and descriptors and reconciles them
func ListBundles(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.list")
	logger.Debug().Msg("Executing command")

	bundles, err := opts.Bundles.Enumerate()
	if err != nil {
		return nil, err
	}

	identifiers, err := opts.Descriptors.Identifiers()
	if err != nil {
		return nil, err
	}

	partition := reconcile.Reconcile(bundles, identifiers)
	result := &Result{
		Matched:   partition.Matched,
		Unmatched: partition.Unmatched,
	}

	logger.Info().
		Int("matched", len(result.Matched)).
		Int("unmatched", len(result.Unmatched)).
		Msg("Command finished")
	return result, nil
}
