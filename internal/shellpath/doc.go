// Package shellpath resolves the directories GNOME Shell scans for
// extensions. Per-user extensions live under the XDG data home, system-wide
// extensions under <prefix>/share; in both cases the extension's uuid is the
// final path segment. Resolution is pure path computation plus environment
// lookups and never touches the filesystem.
package shellpath
