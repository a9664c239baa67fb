// Package show implements printing a descriptor's content by identifier.
package show

import (
	"github.com/arthur-debert/appin/pkg/desktop"
	"github.com/arthur-debert/appin/pkg/logging"
)

// Options defines the options for the ShowDesktop command
type Options struct {
	Descriptors *desktop.Store

	// Name is the identifier to look up
	Name string
}

// Result holds the descriptor content
type Result struct {
	Path    string
	Content string
}

// ShowDesktop reads the descriptor for an identifier. A missing
// descriptor returns a DESCRIPTOR_NOT_FOUND coded error; the caller
// reports it as a warning with a non-zero exit, no writes happen.
func ShowDesktop(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.show")
	logger.Debug().Str("name", opts.Name).Msg("Executing command")

	content, err := opts.Descriptors.Read(opts.Name)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:    opts.Descriptors.Path(opts.Name),
		Content: content,
	}, nil
}
