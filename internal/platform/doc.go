// Package platform wraps the filesystem operations whose behavior differs
// across operating systems: permission bits and symbolic links. GNOME Shell
// itself only runs on Unix-likes, but the build half of the tool still works
// elsewhere, so Windows gets no-ops rather than errors where that is safe.
package platform
