package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// CreateSymlink creates a symbolic link from link pointing to target.
// Used by the link install mode, where the extension directory is a
// symlink into the working tree.
func CreateSymlink(target, link string) error {
	return os.Symlink(target, link)
}

// RemoveSymlink removes a symlink without touching what it points to.
func RemoveSymlink(path string) error {
	return os.Remove(path)
}

// ReadSymlinkTarget returns the target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// IsSymlink reports whether path exists and is a symbolic link.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
