package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is looked up in the working directory when no
// config file is given.
const DefaultConfigFilename = "ospurge.yaml"

// Load reads a configuration file and applies defaults and environment
// fallbacks. It does not validate: flags may still fill required fields.
func Load(path string) (*PurgeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a YAML configuration.
func LoadFromBytes(data []byte) (*PurgeConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	cfg.applyDefaults()
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadOptional loads path when set, else the default file in the working
// directory if present, else an empty configuration.
func LoadOptional(path string) (*PurgeConfig, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.ApplyEnv()
		return cfg, nil
	}
	return cfg, err
}

// DefaultConfigPath returns the default config path in the working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(cwd, DefaultConfigFilename)
}
