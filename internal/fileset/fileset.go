package fileset

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gse-build/gse/internal/metadata"
)

// EntryPoint is the JavaScript file GNOME Shell loads for every extension.
const EntryPoint = "extension.js"

// excludedDirs are directory names never descended into.
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// defaultExcludes are file patterns dropped from every selection. They
// cover OS noise and the build tool's own artifacts.
var defaultExcludes = []string{
	".DS_Store",
	"gse.yaml",
	"*.shell-extension.zip",
}

// RuleSet describes which files under a source root belong to the
// extension.
type RuleSet struct {
	// Patterns are doublestar globs matched against slash-separated paths
	// relative to the source root. An empty slice selects all files.
	Patterns []string

	// Exclude are additional globs merged with the built-in defaults.
	Exclude []string

	// BuildDir is the top-level build directory name to skip. Empty means
	// no build directory lives inside the source tree.
	BuildDir string
}

// Validate checks every configured glob eagerly so invalid patterns fail
// at configure time rather than silently matching nothing.
func (r RuleSet) Validate() error {
	for _, pat := range r.Patterns {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("invalid source pattern %q: %w", pat, err)
		}
	}
	for _, pat := range r.Exclude {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pat, err)
		}
	}
	return nil
}

// Select walks srcDir and returns the relative paths of all files the rule
// set includes, in walk order. Symlinks are skipped, matching the install
// copy primitive.
func (r RuleSet) Select(srcDir string) ([]string, error) {
	var selected []string

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			if r.BuildDir != "" && rel == r.BuildDir {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks; only regular files are installed.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if r.Matches(rel) {
			selected = append(selected, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("selecting files in %s: %w", srcDir, err)
	}

	return selected, nil
}

// Matches reports whether a single path, relative to the source root,
// belongs to the extension under this rule set.
func (r RuleSet) Matches(rel string) bool {
	normalized := filepath.ToSlash(rel)

	// The descriptor and entry point are part of every extension.
	if normalized == metadata.FileName || normalized == EntryPoint {
		return true
	}

	for _, pat := range defaultExcludes {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return false
		}
	}
	for _, pat := range r.Exclude {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return false
		}
	}

	if len(r.Patterns) == 0 {
		return true
	}
	for _, pat := range r.Patterns {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}
