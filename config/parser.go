package config

import (
	"fmt"
	"os"

	"github.com/mstoykov/envconfig"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from the defaults, the optional YAML file at
// path and the HTTPLAB_* environment variables, then validates it.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err := parseYAMLInto(cfg, data); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process("", cfg, lookupEnv); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// parseYAMLInto overlays the YAML document on cfg. Keys missing from the
// document keep their current value.
func parseYAMLInto(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return nil
}
