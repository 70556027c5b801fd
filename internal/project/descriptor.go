package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// DescriptorFile is the optional per-project build descriptor.
const DescriptorFile = "gse.yaml"

// Descriptor represents a gse.yaml at the extension source root. Every
// field is optional; the zero value means "all files, default layout".
type Descriptor struct {
	Sources    []string `yaml:"sources,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty"`
	SchemasDir string   `yaml:"schemas-dir,omitempty"`
}

// LoadDescriptor reads and parses gse.yaml from the given source directory.
// A missing file is not an error: it yields the zero descriptor.
func LoadDescriptor(dir string) (*Descriptor, error) {
	path := filepath.Join(dir, DescriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Descriptor{}, nil
		}
		return nil, fmt.Errorf("reading project descriptor %s: %w", path, err)
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing project descriptor %s: %w", path, err)
	}

	return &d, nil
}
