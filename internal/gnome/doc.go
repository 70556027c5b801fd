// Package gnome talks to the GNOME tooling on the host: it detects the
// running gnome-shell version, checks extension compatibility against it
// using the shell's own matching rule, and drives glib-compile-schemas for
// extensions that ship GSettings schemas. All externals are optional; a
// machine without them can still build and pack.
package gnome
