package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of a catalog override.
type file struct {
	Entries []Entry `yaml:"entries"`
}

// LoadFile reads a YAML catalog of the form
//
//	entries:
//	  - id: 1
//	    name: Rice
//	    image: placeholder.svg?height=150&width=150
//
// and validates it with New.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parsing catalog: %w", err)
	}
	c, err := New(f.Entries...)
	if err != nil {
		return Catalog{}, fmt.Errorf("validating catalog: %w", err)
	}
	return c, nil
}
