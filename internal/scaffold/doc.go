// Package scaffold generates new extension projects from embedded templates.
// It powers the "gse create" command, producing a runnable skeleton
// (metadata.json, extension.js, prefs.js, stylesheet.css, gse.yaml) that
// gse build can stage and install as-is.
package scaffold
