package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of feed profiles
type Loader struct {
	path string
}

// NewLoader creates a new profile loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the profile file. The path is operator-provided
// configuration, so any read or parse failure is an error.
func (l *Loader) Load() (*Profile, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validate(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", l.path, err)
	}

	return &profile, nil
}

// validate validates the profile
func (l *Loader) validate(profile *Profile) error {
	for name, override := range profile.Systems {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("system override with empty name")
		}
		if override.Hide && (override.Title != "" || override.Icon != "") {
			return fmt.Errorf("system %q is hidden but also carries overrides", name)
		}
	}
	return nil
}
