package selfinstall

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeTool writes an executable script that reports the given version
// as JSON, standing in for a real gse binary.
func fakeTool(t *testing.T, version string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-gse")
	script := "#!/bin/sh\necho '{\"version\": \"" + version + "\"}'\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInstall(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tool install is not supported on Windows")
	}

	tools := t.TempDir()
	t.Setenv("GSE_TOOLS", tools)

	src := fakeTool(t, "1.2.3")
	target, err := Install(src, "1.2.3")
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	want := filepath.Join(tools, "gse")
	if target != want {
		t.Errorf("Install() = %q, want %q", target, want)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat installed binary: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Error("installed binary is not executable")
	}

	if _, err := os.Stat(target + ".backup"); !os.IsNotExist(err) {
		t.Error("backup left behind after successful install")
	}
}

func TestInstallVersionMismatchRollsBack(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tool install is not supported on Windows")
	}

	tools := t.TempDir()
	t.Setenv("GSE_TOOLS", tools)

	// Seed a previous install.
	if _, err := Install(fakeTool(t, "1.0.0"), "1.0.0"); err != nil {
		t.Fatalf("seeding install: %v", err)
	}

	// The new binary reports the wrong version.
	if _, err := Install(fakeTool(t, "9.9.9"), "2.0.0"); err == nil {
		t.Fatal("Install() expected verification error")
	}

	// Previous install must be restored.
	version, err := InstalledVersion(filepath.Join(tools, "gse"))
	if err != nil {
		t.Fatalf("InstalledVersion() error = %v", err)
	}
	if version != "1.0.0" {
		t.Errorf("installed version after rollback = %q, want %q", version, "1.0.0")
	}
}

func TestInstallFirstVerifyFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tool install is not supported on Windows")
	}

	tools := t.TempDir()
	t.Setenv("GSE_TOOLS", tools)

	if _, err := Install(fakeTool(t, "1.0.0"), "2.0.0"); err == nil {
		t.Fatal("Install() expected verification error")
	}

	// With no previous install there is nothing to restore.
	if _, err := os.Stat(filepath.Join(tools, "gse")); !os.IsNotExist(err) {
		t.Error("failed install was not cleaned up")
	}
}

func TestInspect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("tool install is not supported on Windows")
	}

	t.Setenv("GSE_TOOLS", t.TempDir())

	if _, err := Install(fakeTool(t, "1.0.0"), "1.0.0"); err != nil {
		t.Fatalf("seeding install: %v", err)
	}

	st, err := Inspect("1.1.0")
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if !st.Installed {
		t.Error("Installed = false, want true")
	}
	if st.InstalledVersion != "1.0.0" {
		t.Errorf("InstalledVersion = %q, want %q", st.InstalledVersion, "1.0.0")
	}
	if st.UpToDate {
		t.Error("UpToDate = true, want false for an older install")
	}

	st, err = Inspect("1.0.0")
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if !st.UpToDate {
		t.Error("UpToDate = false, want true for a matching install")
	}
}

func TestInspectNotInstalled(t *testing.T) {
	t.Setenv("GSE_TOOLS", t.TempDir())

	st, err := Inspect("1.2.3")
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if st.Installed {
		t.Error("Installed = true for an empty tools directory")
	}
	if st.RunningVersion != "1.2.3" {
		t.Errorf("RunningVersion = %q, want %q", st.RunningVersion, "1.2.3")
	}
}

func TestRollbackBinary(t *testing.T) {
	tmp := t.TempDir()

	backupPath := filepath.Join(tmp, "gse.backup")
	currentPath := filepath.Join(tmp, "gse")

	// Create a backup file.
	os.WriteFile(backupPath, []byte("original binary"), 0755)

	err := RollbackBinary(backupPath, currentPath)
	if err != nil {
		t.Fatalf("RollbackBinary failed: %v", err)
	}

	// Verify the original is restored.
	data, err := os.ReadFile(currentPath)
	if err != nil {
		t.Fatalf("reading restored binary: %v", err)
	}
	if string(data) != "original binary" {
		t.Errorf("restored content mismatch: %s", data)
	}

	// Backup should be removed.
	if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
		t.Error("backup file was not cleaned up")
	}
}

func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	os.WriteFile(src, []byte("copy test"), 0644)

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading dst: %v", err)
	}
	if string(data) != "copy test" {
		t.Errorf("content mismatch: %s", data)
	}
}
