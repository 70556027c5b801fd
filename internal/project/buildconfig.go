package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	configFile = "config.yaml"
	stageDir   = "stage"
)

// ErrNotConfigured is returned by Load when the build directory holds no
// configure cache.
var ErrNotConfigured = errors.New("project is not configured (run \"gse configure\" first)")

// BuildConfig is the outcome of the configure step: all settings the build
// and install steps need, resolved once and cached in the build directory.
type BuildConfig struct {
	UUID         string   `yaml:"uuid"`
	Scope        string   `yaml:"scope"`
	Prefix       string   `yaml:"prefix"`
	SourceDir    string   `yaml:"source-dir"`
	BuildDir     string   `yaml:"build-dir"`
	Sources      []string `yaml:"sources,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
	SchemasDir   string   `yaml:"schemas-dir,omitempty"`
	ShellVersion string   `yaml:"shell-version,omitempty"`
}

// StageDir returns the directory the build step stages files into.
func (c *BuildConfig) StageDir() string {
	return filepath.Join(c.BuildDir, stageDir)
}

// ConfigPath returns the full path of the configure cache for a build
// directory.
func ConfigPath(buildDir string) string {
	return filepath.Join(buildDir, configFile)
}

// Save writes the configure cache, creating the build directory if needed.
func Save(cfg *BuildConfig) error {
	if err := os.MkdirAll(cfg.BuildDir, 0755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", cfg.BuildDir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling build config: %w", err)
	}

	path := ConfigPath(cfg.BuildDir)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing build config %s: %w", path, err)
	}

	return nil
}

// Load reads the configure cache from a build directory. A missing cache
// returns ErrNotConfigured.
func Load(buildDir string) (*BuildConfig, error) {
	path := ConfigPath(buildDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("reading build config %s: %w", path, err)
	}

	var cfg BuildConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing build config %s: %w", path, err)
	}

	return &cfg, nil
}
