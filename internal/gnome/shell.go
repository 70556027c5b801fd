package gnome

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	shellBinary    = "gnome-shell"
	schemaCompiler = "glib-compile-schemas"
)

// FindShell returns the path of the gnome-shell binary. The error wraps
// exec.ErrNotFound when the binary is not installed.
func FindShell() (string, error) {
	return exec.LookPath(shellBinary)
}

// FindSchemaCompiler returns the path of the glib-compile-schemas binary.
func FindSchemaCompiler() (string, error) {
	return exec.LookPath(schemaCompiler)
}

// DetectShellVersion runs `gnome-shell --version` and returns the version
// number, e.g. "46.2".
func DetectShellVersion(ctx context.Context) (string, error) {
	bin, err := FindShell()
	if err != nil {
		return "", fmt.Errorf("gnome-shell not found: %w", err)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running gnome-shell --version: %w", err)
	}

	return ParseShellVersion(out.String())
}

// ParseShellVersion extracts the version number from `gnome-shell --version`
// output such as "GNOME Shell 46.2". Pre-release suffixes like "47.alpha"
// reduce to their numeric components.
func ParseShellVersion(out string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) == 0 {
		return "", errors.New("empty gnome-shell version output")
	}
	raw := fields[len(fields)-1]

	var numeric []string
	for _, part := range strings.Split(raw, ".") {
		if _, err := strconv.Atoi(part); err != nil {
			break
		}
		numeric = append(numeric, part)
	}
	if len(numeric) == 0 {
		return "", fmt.Errorf("unrecognized gnome-shell version %q", raw)
	}
	return strings.Join(numeric, "."), nil
}

// CompileSchemas runs glib-compile-schemas on dir, producing
// gschemas.compiled next to the XML sources.
func CompileSchemas(ctx context.Context, dir string) error {
	bin, err := FindSchemaCompiler()
	if err != nil {
		return fmt.Errorf("glib-compile-schemas not found: %w", err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, dir)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("glib-compile-schemas: %s", strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("running glib-compile-schemas: %w", err)
	}
	return nil
}
