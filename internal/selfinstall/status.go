package selfinstall

import (
	"fmt"
	"os"
)

// Status describes the installed tool copy relative to the running binary.
type Status struct {
	Path             string
	Installed        bool
	InstalledVersion string
	RunningVersion   string
	UpToDate         bool
}

// Inspect reports whether a tool copy is installed and how its version
// compares to the running binary's.
func Inspect(runningVersion string) (*Status, error) {
	path, err := InstallPath()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Path:           path,
		RunningVersion: runningVersion,
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, fmt.Errorf("stat installed binary: %w", err)
	}
	st.Installed = true

	version, err := InstalledVersion(path)
	if err != nil {
		return nil, err
	}
	st.InstalledVersion = version

	// Dev builds carry non-semver versions; fall back to string equality.
	if version == runningVersion {
		st.UpToDate = true
	} else if stale, err := IsUpdateAvailable(version, runningVersion); err == nil {
		st.UpToDate = !stale
	}

	return st, nil
}

// InstalledVersion queries the installed binary for its version.
func InstalledVersion(binaryPath string) (string, error) {
	info, err := queryVersion(binaryPath)
	if err != nil {
		return "", err
	}
	return info["version"], nil
}
