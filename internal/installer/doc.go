// Package installer moves extension files between the three trees a build
// touches: the source directory, the stage directory inside the build
// directory, and the extensions directory GNOME Shell scans. Installs are
// remove-then-copy so no stale files from a previous version survive, and
// a link mode symlinks the source tree instead of copying for development.
package installer
