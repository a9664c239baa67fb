package desktop

import (
	"fmt"
	"strings"
)

// Entry holds the fields appin writes into a descriptor. Content
// generation is deterministic: the same Entry always renders the same
// bytes, which is what makes descriptor regeneration idempotent.
type Entry struct {
	// Name is the display name shown in the launcher (the identifier)
	Name string

	// ExecPath is the absolute path to the bundle
	ExecPath string

	// Icon is the icon reference (base name without extension), empty
	// when no colocated icon was found
	Icon string
}

// Render produces the descriptor file content
func (e Entry) Render() string {
	var b strings.Builder

	b.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&b, "Name=%s\n", e.Name)
	fmt.Fprintf(&b, "Exec=%q %%U\n", e.ExecPath)
	b.WriteString("Terminal=false\n")
	b.WriteString("Type=Application\n")
	if e.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", e.Icon)
	} else {
		// Placeholder keeps the field visible for hand editing
		b.WriteString("#Icon=\n")
	}
	b.WriteString("StartupNotify=true\n")
	b.WriteString("Categories=Utility;\n")

	return b.String()
}
