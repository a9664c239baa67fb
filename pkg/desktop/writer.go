package desktop

import (
	"path/filepath"

	"github.com/arthur-debert/appin/pkg/appimage"
	"github.com/arthur-debert/appin/pkg/logging"
)

// Writer produces and persists the descriptor for a bundle
type Writer struct {
	store *Store
	icons *IconInstaller
}

// NewWriter creates a descriptor writer persisting through store, with
// icons installed by icons
func NewWriter(store *Store, icons *IconInstaller) *Writer {
	return &Writer{store: store, icons: icons}
}

// Write generates the descriptor for a bundle and persists it, returning
// the descriptor path. A colocated icon is copied into the icon
// directory first; no icon just omits the reference. Re-running on
// unchanged inputs produces byte-identical content. Write failures are
// fatal to the run and propagate unwrapped.
func (w *Writer) Write(b appimage.Bundle) (string, error) {
	logger := logging.GetLogger("desktop.writer")

	icon, err := w.icons.Install(filepath.Dir(b.Path), b.FullBaseName())
	if err != nil {
		return "", err
	}

	entry := Entry{
		Name:     b.ID(),
		ExecPath: b.Path,
		Icon:     icon,
	}

	if err := w.store.Write(b.ID(), entry.Render()); err != nil {
		return "", err
	}

	path := w.store.Path(b.ID())
	logger.Info().Str("bundle", b.Name).Str("descriptor", path).Msg("Descriptor written")
	return path, nil
}
