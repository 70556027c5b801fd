package gnome

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supports reports whether an extension declaring shellVersions runs on the
// given shell version, using the shell's own matching rule: a bare major
// entry matches any release of that major (GNOME 40 and later only), a
// major.minor entry must match both components. An empty declaration
// matches nothing.
func Supports(shellVersions []string, shellVersion string) (bool, error) {
	v, err := parseShell(shellVersion)
	if err != nil {
		return false, fmt.Errorf("parsing shell version %q: %w", shellVersion, err)
	}
	major := strconv.FormatUint(v.Major(), 10)
	minor := strconv.FormatUint(v.Minor(), 10)

	for _, entry := range shellVersions {
		parts := strings.Split(entry, ".")
		if parts[0] != major {
			continue
		}
		if len(parts) == 1 {
			if v.Major() >= 40 {
				return true, nil
			}
			continue
		}
		if parts[1] == minor {
			return true, nil
		}
	}
	return false, nil
}

// parseShell parses a GNOME Shell version string. Partial versions like
// "46" or "46.2" are padded to full semver form.
func parseShell(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
