// Package reconcile partitions bundles by whether a descriptor exists
// for their derived identifier. The same primitive backs the list report
// and the bulk create path, so both always agree on what counts as
// integrated.
package reconcile

import (
	"github.com/arthur-debert/appin/pkg/appimage"
)

// Result is a partition of bundles into those with a descriptor and
// those without. The two slices preserve the input order, are disjoint
// and together cover every input bundle.
type Result struct {
	Matched   []appimage.Bundle
	Unmatched []appimage.Bundle
}

// Reconcile partitions bundles against the set of descriptor
// identifiers. Membership is tested on each bundle's derived identifier;
// the identifier set is built once so the partition is a single pass.
func Reconcile(bundles []appimage.Bundle, identifiers []string) Result {
	known := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		known[id] = struct{}{}
	}

	var res Result
	for _, b := range bundles {
		if _, ok := known[b.ID()]; ok {
			res.Matched = append(res.Matched, b)
		} else {
			res.Unmatched = append(res.Unmatched, b)
		}
	}
	return res
}
