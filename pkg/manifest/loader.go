// Package manifest loads optional YAML manifests that attach captions,
// labels, precision, and renderer choices to individual input files, plus
// directory-level defaults. A manifest lives next to the datasets it
// describes (conventionally "tables.yaml").
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Defaults Entry            `yaml:"defaults"`
	Tables   map[string]Entry `yaml:"tables"`
}

// Load reads and parses a manifest file from disk.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes manifest bytes. The origin parameter is used in error
// messages only.
func Parse(data []byte, origin string) (*Store, error) {
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", origin, err)
	}

	store := &Store{
		defaults: doc.Defaults,
		tables:   make(map[string]Entry, len(doc.Tables)),
	}

	for name, entry := range doc.Tables {
		key := strings.TrimSpace(name)
		if key == "" {
			return nil, fmt.Errorf("manifest: file %s declares an entry with an empty table name", origin)
		}
		if entry.Precision != nil && *entry.Precision < 0 {
			return nil, fmt.Errorf("manifest: file %s: table %q: precision must be >= 0", origin, key)
		}
		store.tables[key] = entry
	}

	return store, nil
}
