package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeedFile reads a YAML seed. Sections left out of the file are empty,
// except preferences, which default to DefaultPreferences.
func LoadSeedFile(path string) (Seed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file %s: %w", path, err)
	}

	seed := Seed{Preferences: DefaultPreferences()}
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// WriteSeedFile writes seed as YAML, replacing any existing file.
func WriteSeedFile(path string, seed Seed) error {
	content, err := yaml.Marshal(seed)
	if err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write seed file %s: %w", path, err)
	}
	return nil
}
