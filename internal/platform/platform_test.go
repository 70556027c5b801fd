package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Chmod(path, 0755); err != nil {
		t.Fatalf("Chmod: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %o, want 0755", info.Mode().Perm())
	}
}

func TestSymlinkRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	link := filepath.Join(dir, "link")

	if err := CreateSymlink(target, link); err != nil {
		t.Fatalf("CreateSymlink: %v", err)
	}
	if !IsSymlink(link) {
		t.Error("IsSymlink = false for a created symlink")
	}

	got, err := ReadSymlinkTarget(link)
	if err != nil {
		t.Fatalf("ReadSymlinkTarget: %v", err)
	}
	if got != target {
		t.Errorf("target = %q, want %q", got, target)
	}

	if err := RemoveSymlink(link); err != nil {
		t.Fatalf("RemoveSymlink: %v", err)
	}
	if IsSymlink(link) {
		t.Error("symlink still present after removal")
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("target directory disturbed by symlink removal: %v", err)
	}
}

func TestIsSymlink_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if IsSymlink(path) {
		t.Error("IsSymlink = true for a regular file")
	}
	if IsSymlink(filepath.Join(t.TempDir(), "missing")) {
		t.Error("IsSymlink = true for a missing path")
	}
}
