package shellpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gse-build/gse/internal/branding"
)

// Path segments of the extensions layout shared by both scopes.
const (
	ShareDir      = "share"
	ShellDir      = "gnome-shell"
	ExtensionsDir = "extensions"

	// ToolsDir is where `gse tool install` places the binary, under the
	// CLI's own data directory.
	ToolsDir = "tools"
)

// DefaultPrefix is the install prefix used for system scope when none is
// configured.
const DefaultPrefix = "/usr"

// DataHome returns the per-user data directory: $XDG_DATA_HOME, falling
// back to ~/.local/share.
func DataHome() (string, error) {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// UserExtensionsRoot returns the per-user extensions directory.
// It checks the GSE_EXTENSIONS environment variable first, then falls back
// to <data home>/gnome-shell/extensions.
func UserExtensionsRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("EXTENSIONS")); v != "" {
		return v, nil
	}
	data, err := DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(data, ShellDir, ExtensionsDir), nil
}

// SystemExtensionsRoot returns the system-wide extensions directory under
// the given install prefix.
func SystemExtensionsRoot(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return filepath.Join(prefix, ShareDir, ShellDir, ExtensionsDir)
}

// SystemDataDirs returns the system data directories from $XDG_DATA_DIRS,
// falling back to the XDG default of /usr/local/share:/usr/share.
func SystemDataDirs() []string {
	v := os.Getenv("XDG_DATA_DIRS")
	if v == "" {
		return []string{"/usr/local/share", "/usr/share"}
	}
	var dirs []string
	for _, d := range strings.Split(v, string(os.PathListSeparator)) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// SystemExtensionRoots returns every system-wide extensions directory the
// shell would scan, one per system data dir.
func SystemExtensionRoots() []string {
	dataDirs := SystemDataDirs()
	roots := make([]string, 0, len(dataDirs))
	for _, d := range dataDirs {
		roots = append(roots, filepath.Join(d, ShellDir, ExtensionsDir))
	}
	return roots
}

// ExtensionDir resolves the install directory for an extension: the scope's
// extensions root with the uuid appended as the final segment. prefix is
// only consulted for system scope.
func ExtensionDir(scope Scope, prefix, uuid string) (string, error) {
	switch scope {
	case ScopeSystem:
		return filepath.Join(SystemExtensionsRoot(prefix), uuid), nil
	default:
		root, err := UserExtensionsRoot()
		if err != nil {
			return "", err
		}
		return filepath.Join(root, uuid), nil
	}
}

// ToolsRoot returns the directory for self-installed gse binaries.
// It checks the GSE_TOOLS environment variable first, then falls back to
// <data home>/gse/tools.
func ToolsRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("TOOLS")); v != "" {
		return v, nil
	}
	data, err := DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(data, branding.DirName(), ToolsDir), nil
}
