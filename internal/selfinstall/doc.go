// Package selfinstall copies the running gse binary into the shared tools
// directory so build hooks and editor integrations can invoke it from a
// stable path. The swap is guarded: an existing install is kept as a backup
// until the new copy proves it can report its own version, and is restored
// otherwise.
package selfinstall
