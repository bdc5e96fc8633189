package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KingdomFile represents the top-level YAML structure.
type KingdomFile struct {
	Kingdoms []KingdomEntry `yaml:"kingdoms"`
}

// KingdomEntry represents a single named kingdom selection in the YAML file.
type KingdomEntry struct {
	Name  string   `yaml:"name"`
	Cards []string `yaml:"cards"`
}

// ParseKingdomFile parses a YAML kingdom file and returns a map of kingdom
// name → card names. Names are validated later against the configured
// expansions, at game construction.
func ParseKingdomFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var kf KingdomFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse kingdom YAML: %w", err)
	}

	kingdoms := make(map[string][]string)
	for _, k := range kf.Kingdoms {
		kingdoms[k.Name] = k.Cards
	}
	return kingdoms, nil
}

// KingdomByName returns the named kingdom selection from the file.
func KingdomByName(path, name string) ([]string, error) {
	kingdoms, err := ParseKingdomFile(path)
	if err != nil {
		return nil, err
	}
	cards, ok := kingdoms[name]
	if !ok {
		return nil, fmt.Errorf("kingdom %q not found in %s", name, path)
	}
	return cards, nil
}
