// Package project handles the two YAML files that describe an extension
// build: the optional gse.yaml descriptor at the source root (file patterns
// and the schemas directory) and the config.yaml cache the configure step
// writes into the build directory so build and install replay the same
// resolved settings.
package project
