// Package fileset selects the extension source files a build includes.
// Selection walks the source tree and matches relative paths against
// doublestar glob patterns; no patterns means every file. The descriptor
// and entry point are always included so a narrow pattern list cannot
// produce an extension GNOME Shell would refuse to load.
package fileset
