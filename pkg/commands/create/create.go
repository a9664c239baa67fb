// Package create implements descriptor regeneration for a set of
// resolved bundles.
package create

import (
	"fmt"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/logging"
	"github.com/arthur-debert/appin/pkg/system"
)

// Options defines the options for the CreateDesktops command
type Options struct {
	// Bundles is the bundle store to resolve tokens against
	Bundles *appimage.Store

	// Writer persists descriptors
	Writer *desktop.Writer

	// Index is refreshed once after the batch; nil skips the refresh
	Index system.LauncherIndex

	// DesktopDir is passed to the index refresh
	DesktopDir string

	// Tokens are the user-supplied bundle tokens; empty means the whole
	// bundle directory
	Tokens []string
}

// Created records one regenerated descriptor
type Created struct {
	Bundle         appimage.Bundle
	DescriptorPath string
}

// Result is the outcome of a CreateDesktops run
type Result struct {
	// Created lists every descriptor that was written, in processing order
	Created []Created

	// Warnings are per-bundle problems that did not abort the batch
	Warnings []string
}

// CreateDesktops resolves the targets, marks each bundle executable and
// regenerates its descriptor. Descriptors are rewritten unconditionally,
// matched or not: regeneration is idempotent so the simple rule wins.
// Per-bundle resolution problems are warnings; a descriptor or icon
// write failure aborts the whole run. The launcher index is refreshed
// once after the batch when anything was written.
func CreateDesktops(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.create")
	logger.Debug().Strs("tokens", opts.Tokens).Msg("Executing command")

	result := &Result{}

	targets, warnings, err := resolveTargets(opts.Bundles, opts.Tokens)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings

	for _, b := range targets {
		if err := opts.Bundles.MarkExecutable(b); err != nil {
			// The descriptor is still useful without the bit; warn and go on
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not mark %s executable: %v", b.Name, err))
		}

		path, err := opts.Writer.Write(b)
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, Created{Bundle: b, DescriptorPath: path})
	}

	if len(result.Created) > 0 && opts.Index != nil {
		if err := opts.Index.Refresh(opts.DesktopDir); err != nil {
			// The writes already happened; a stale index is only a warning
			result.Warnings = append(result.Warnings, fmt.Sprintf("launcher index refresh failed: %v", err))
		}
	}

	logger.Info().
		Int("created", len(result.Created)).
		Int("warnings", len(result.Warnings)).
		Msg("Command finished")
	return result, nil
}

// resolveTargets expands tokens into bundles, or enumerates the whole
// bundle directory when no tokens were given
func resolveTargets(store *appimage.Store, tokens []string) ([]appimage.Bundle, []string, error) {
	if len(tokens) == 0 {
		bundles, err := store.Enumerate()
		return bundles, nil, err
	}

	var targets []appimage.Bundle
	var warnings []string
	seen := make(map[string]struct{})

	for _, token := range tokens {
		matches, err := store.Resolve(token)
		if err != nil {
			return nil, nil, err
		}
		if len(matches) == 0 {
			warnings = append(warnings, fmt.Sprintf("no bundle matches %q", token))
			continue
		}
		for _, b := range matches {
			if _, dup := seen[b.Path]; dup {
				continue
			}
			seen[b.Path] = struct{}{}
			targets = append(targets, b)
		}
	}

	return targets, warnings, nil
}
