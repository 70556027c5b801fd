package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gse-build/gse/internal/fileset"
	"github.com/gse-build/gse/internal/platform"
	"github.com/gse-build/gse/internal/project"
	"github.com/gse-build/gse/internal/shellpath"
)

// ErrNotStaged is returned by Install when the stage directory is missing.
var ErrNotStaged = errors.New("no staged build found (run \"gse build\" first)")

// Stage selects the extension's files and copies them into the stage
// directory, replacing any previous stage. The returned plan lists the
// staged files in walk order.
func Stage(cfg *project.BuildConfig) (*Plan, error) {
	rules := fileset.RuleSet{
		Patterns: cfg.Sources,
		Exclude:  cfg.Exclude,
		BuildDir: buildDirName(cfg),
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	files, err := rules.Select(cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	stage := cfg.StageDir()
	if err := os.RemoveAll(stage); err != nil {
		return nil, fmt.Errorf("clearing stage directory %s: %w", stage, err)
	}
	if err := os.MkdirAll(stage, 0755); err != nil {
		return nil, fmt.Errorf("creating stage directory %s: %w", stage, err)
	}

	for _, rel := range files {
		if err := copyRel(cfg.SourceDir, stage, rel); err != nil {
			return nil, fmt.Errorf("staging %s: %w", rel, err)
		}
	}

	return &Plan{
		UUID:   cfg.UUID,
		Source: cfg.SourceDir,
		Target: stage,
		Files:  files,
	}, nil
}

// Install copies the staged tree into the resolved extension directory.
// A non-empty destdir is prefixed to the target path for packaging-style
// staged installs. Any existing installation at the target is removed
// first.
func Install(cfg *project.BuildConfig, destdir string) (*Plan, error) {
	stage := cfg.StageDir()
	if _, err := os.Stat(stage); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotStaged
		}
		return nil, fmt.Errorf("checking stage directory %s: %w", stage, err)
	}

	target, err := Target(cfg, destdir)
	if err != nil {
		return nil, err
	}

	// Remove existing installation (directory or leftover dev link) to
	// ensure a clean copy.
	if _, err := os.Lstat(target); err == nil {
		if err := os.RemoveAll(target); err != nil {
			return nil, fmt.Errorf("removing existing installation at %s: %w", target, err)
		}
	}

	if err := copyDir(stage, target); err != nil {
		return nil, fmt.Errorf("copying %s to %s: %w", stage, target, err)
	}

	files, err := listFiles(stage)
	if err != nil {
		return nil, err
	}

	return &Plan{
		UUID:   cfg.UUID,
		Source: stage,
		Target: target,
		Files:  files,
	}, nil
}

// InstallLink symlinks the source directory as the extension directory
// instead of copying, so edits in the working tree are live after a shell
// reload. Returns the link path.
func InstallLink(cfg *project.BuildConfig) (string, error) {
	target, err := Target(cfg, "")
	if err != nil {
		return "", err
	}

	src, err := filepath.Abs(cfg.SourceDir)
	if err != nil {
		return "", fmt.Errorf("resolving source directory: %w", err)
	}

	if platform.IsSymlink(target) {
		// A link to the same source is already what we want.
		if current, err := platform.ReadSymlinkTarget(target); err == nil && current == src {
			return target, nil
		}
		if err := platform.RemoveSymlink(target); err != nil {
			return "", fmt.Errorf("removing existing link at %s: %w", target, err)
		}
	} else if _, err := os.Lstat(target); err == nil {
		if err := os.RemoveAll(target); err != nil {
			return "", fmt.Errorf("removing existing installation at %s: %w", target, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("creating extensions directory: %w", err)
	}

	if err := platform.CreateSymlink(src, target); err != nil {
		return "", fmt.Errorf("linking %s to %s: %w", src, target, err)
	}

	return target, nil
}

// Uninstall removes the extension directory for uuid under the given
// scope. It reports the removed path and whether anything was there.
func Uninstall(scope shellpath.Scope, prefix, uuid string) (string, bool, error) {
	dir, err := shellpath.ExtensionDir(scope, prefix, uuid)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Lstat(dir); err != nil {
		if os.IsNotExist(err) {
			return dir, false, nil
		}
		return dir, false, fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return dir, false, fmt.Errorf("removing %s: %w", dir, err)
	}

	return dir, true, nil
}

// IsLinked reports whether the installed extension directory is a dev-mode
// symlink rather than a copied tree.
func IsLinked(scope shellpath.Scope, prefix, uuid string) bool {
	dir, err := shellpath.ExtensionDir(scope, prefix, uuid)
	if err != nil {
		return false
	}
	return platform.IsSymlink(dir)
}

// Target resolves the final install directory for the configured scope,
// uuid and prefix, with destdir prepended when set.
func Target(cfg *project.BuildConfig, destdir string) (string, error) {
	scope, err := shellpath.ParseScope(cfg.Scope)
	if err != nil {
		return "", err
	}

	dir, err := shellpath.ExtensionDir(scope, cfg.Prefix, cfg.UUID)
	if err != nil {
		return "", err
	}

	if destdir != "" {
		dir = filepath.Join(destdir, dir)
	}
	return dir, nil
}

// buildDirName returns the build directory's name relative to the source
// directory when it lives inside it, so staging can skip it. Empty when the
// build directory is elsewhere.
func buildDirName(cfg *project.BuildConfig) string {
	rel, err := filepath.Rel(cfg.SourceDir, cfg.BuildDir)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}

// listFiles returns the relative paths of all regular files under root, in
// walk order.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	return files, nil
}
