// Package config manages user-level settings stored at ~/.config/gse/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default install scope and the system install prefix.
package config
