// Package metadata handles parsing and validation of GNOME Shell extension
// metadata.json descriptors. Validation combines JSON Schema checks against
// the embedded schema with the semantic rules GNOME enforces on the uuid
// field, which doubles as the extension's install directory name.
package metadata
