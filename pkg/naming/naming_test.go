package naming_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/appin/pkg/naming"
)

func TestFullBaseName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"simple", "krita.AppImage", "krita"},
		{"versioned", "Foo-1.2.AppImage", "Foo-1.2"},
		{"multiple dots", "app.v2.1.AppImage", "app.v2.1"},
		{"no extension", "krita", "krita"},
		{"path is stripped", "/home/user/Applications/Foo-1.2.AppImage", "Foo-1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.FullBaseName(tt.filename))
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"hyphen separator", "Foo-1.2.AppImage", "Foo"},
		{"underscore separator", "Foo_1.2.AppImage", "Foo"},
		{"both separators, first wins", "Foo_bar-1.2.AppImage", "Foo"},
		{"no separator", "krita.AppImage", "krita"},
		{"no separator no extension", "krita", "krita"},
		{"separator only in version", "Inkscape-1.3.AppImage", "Inkscape"},
		{"leading separator is degenerate", "-1.2.AppImage", ""},
		{"leading underscore is degenerate", "_foo.AppImage", ""},
		{"mixed case preserved", "FreeCAD-0.21.AppImage", "FreeCAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.Derive(tt.filename))
		})
	}
}

func TestDerive_NoSeparatorEqualsFullBaseName(t *testing.T) {
	// For any filename without a separator the identifier is the full
	// base name
	for _, filename := range []string{
		"krita.AppImage", "gimp.appimage", "a.x", "noext", "dot.in.middle.AppImage",
	} {
		assert.Equal(t, naming.FullBaseName(filename), naming.Derive(filename), filename)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	// Same filename derives the same identifier on every call, and the
	// identifier never contains a separator
	for _, filename := range []string{
		"Foo-1.2.AppImage", "Bar_9.AppImage", "baz.AppImage", "A-b_c-d.AppImage",
	} {
		first := naming.Derive(filename)
		assert.Equal(t, first, naming.Derive(filename))
		assert.False(t, strings.ContainsAny(first, "-_"), "identifier %q contains a separator", first)
	}
}
