// Package pack builds distributable extension archives.
//
// An archive is a ZIP file named <uuid>.shell-extension.zip with
// metadata.json at its root, the same layout produced by the
// gnome-extensions pack command and accepted by extensions.gnome.org.
package pack
