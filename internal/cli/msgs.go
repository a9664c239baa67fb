package cli

// Message constants
const (
	MsgShort = "Integrate AppImage bundles into the desktop launcher"
	MsgLong  = `appin keeps a directory of AppImage bundles wired into your desktop
launcher. It marks bundles executable, derives a short name for each one
from its filename, and maintains one .desktop entry per bundle so the
launcher can find them.

With bundle names (or paths) as arguments, appin regenerates their
launcher entries. With no arguments and no flags it prints this help.`
	MsgExample = `  # Report which bundles have a launcher entry and which don't
  appin --list

  # Integrate every bundle in the bundle directory
  appin --create-desktop

  # Integrate selected bundles, by short name or path
  appin Firefox ~/Downloads/Inkscape-1.3.AppImage

  # Print the launcher entry for a bundle
  appin --show-desktop Firefox

  # Remove a bundle's launcher entry
  appin --remove-desktop Firefox`

	MsgNoBundles       = "no bundles found in %s"
	MsgNoDescriptor    = "no descriptor for %q"
	MsgNothingRemoved  = "no descriptor for %q, nothing removed"
	MsgRuntimePresent  = "%s is already installed"
	MsgRuntimeDone     = "%s installed"
	MsgDescriptorGone  = "removed %s"
	MsgNothingToCreate = "no descriptors written"
)
