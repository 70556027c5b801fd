package selfinstall

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gse-build/gse/internal/branding"
	"github.com/gse-build/gse/internal/platform"
	"github.com/gse-build/gse/internal/shellpath"
)

// verifyTimeout bounds how long the freshly installed binary may take to
// report its version.
const verifyTimeout = 5 * time.Second

// InstallPath returns the destination for the self-installed binary.
func InstallPath() (string, error) {
	root, err := shellpath.ToolsRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, branding.CLIName()), nil
}

// Install copies the binary at srcPath into the tools directory. An
// existing install is kept as a backup until the new copy verifies; on
// verification failure the backup is restored. Returns the install path.
func Install(srcPath, expectedVersion string) (string, error) {
	if runtime.GOOS == "windows" {
		return "", fmt.Errorf("tool install is not supported on Windows")
	}

	target, err := InstallPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("creating tools directory: %w", err)
	}

	backupPath := target + ".backup"
	hadPrevious := false
	if _, err := os.Stat(target); err == nil {
		hadPrevious = true
		if err := os.Rename(target, backupPath); err != nil {
			// Rename may fail across filesystems; try copy.
			if copyErr := copyFile(target, backupPath); copyErr != nil {
				return "", fmt.Errorf("creating backup: %w", copyErr)
			}
			os.Remove(target)
		}
	}

	if err := copyFile(srcPath, target); err != nil {
		if hadPrevious {
			RollbackBinary(backupPath, target)
		}
		return "", fmt.Errorf("installing binary: %w", err)
	}
	platform.Chmod(target, 0755)

	// Verify the installed copy works before discarding the backup.
	if err := VerifyBinary(target, expectedVersion); err != nil {
		if hadPrevious {
			RollbackBinary(backupPath, target)
			return "", fmt.Errorf("verification failed, rolled back: %w", err)
		}
		os.Remove(target)
		return "", fmt.Errorf("verification failed: %w", err)
	}

	if hadPrevious {
		os.Remove(backupPath)
	}

	return target, nil
}

// VerifyBinary executes the binary with "version --json" and checks that it
// reports the expected version. An empty expectedVersion only checks that
// the binary runs and emits valid JSON.
func VerifyBinary(binaryPath, expectedVersion string) error {
	info, err := queryVersion(binaryPath)
	if err != nil {
		return err
	}
	if expectedVersion != "" && info["version"] != expectedVersion {
		return fmt.Errorf("installed binary reports version %q, want %q", info["version"], expectedVersion)
	}
	return nil
}

// RollbackBinary restores the backup to the install path.
func RollbackBinary(backupPath, currentPath string) error {
	if err := os.Rename(backupPath, currentPath); err != nil {
		if copyErr := copyFile(backupPath, currentPath); copyErr != nil {
			return fmt.Errorf("rollback failed: %w (original rename error: %v)", copyErr, err)
		}
		os.Remove(backupPath)
	}
	return nil
}

// queryVersion runs "version --json" on the binary with a timeout.
func queryVersion(binaryPath string) (map[string]string, error) {
	cmd := exec.Command(binaryPath, "version", "--json")
	// Set a timeout by running in a goroutine.
	done := make(chan error, 1)
	var output []byte
	go func() {
		var err error
		output, err = cmd.Output()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("binary exited with error: %w", err)
		}
	case <-time.After(verifyTimeout):
		cmd.Process.Kill()
		return nil, fmt.Errorf("binary timed out after %s", verifyTimeout)
	}

	var info map[string]string
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("parsing version output: %w", err)
	}

	return info, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
