package config

import (
	"errors"
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads configuration from path. A missing file is not an error;
// Default applies.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration over Default, so omitted keys keep
// their default values. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
		return nil, err
	}
	return config, nil
}
