// Package watch monitors an extension source tree and fires a debounced
// callback when files change. Events inside the debounce window are
// coalesced so one save (or one editor write-then-rename dance) triggers
// a single rebuild.
package watch
