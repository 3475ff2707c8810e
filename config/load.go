package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates a configuration file.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return FileConfig{}, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (FileConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, errors.Wrap(err, "failed to parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}
