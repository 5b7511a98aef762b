package roster

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk roster document. Either a bare sequence of
// names or a mapping with a names key is accepted.
type rosterFile struct {
	Names []string `yaml:"names"`
}

// ParseNamesYAML decodes a roster payload into an ordered name list.
func ParseNamesYAML(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("roster: file is empty")
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err == nil {
		return names, nil
	}

	var doc rosterFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("roster: decode file: %w", err)
	}
	return doc.Names, nil
}

// LoadNamesFile reads a YAML roster file from disk.
func LoadNamesFile(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("roster: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("roster: %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", path, err)
	}
	names, err := ParseNamesYAML(data)
	if err != nil {
		return nil, fmt.Errorf("roster: %s: %w", path, err)
	}
	return names, nil
}
