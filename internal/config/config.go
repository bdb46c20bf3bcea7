package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config represents ~/.config/skai/config.yaml. Every field is optional.
type Config struct {
	// Target is the default install target when --target is not given:
	// "global" or "project".
	Target string `yaml:"target,omitempty"`
	// PackageManagers opts in to running package-manager installs for
	// skill dependencies. Off by default.
	PackageManagers bool `yaml:"package_managers,omitempty"`
	// Theme forces the color palette: "dark", "light", or "auto".
	Theme string `yaml:"theme,omitempty"`
}

// Default returns the config used when no file exists.
func Default() Config {
	return Config{Theme: "auto"}
}

// Parse parses config.yaml bytes and validates field values.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.Theme {
	case "":
		cfg.Theme = "auto"
	case "auto", "dark", "light":
	default:
		return Config{}, fmt.Errorf("invalid theme %q (want dark, light, or auto)", cfg.Theme)
	}
	switch cfg.Target {
	case "", "global", "project":
	default:
		return Config{}, fmt.Errorf("invalid target %q (want global or project)", cfg.Target)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config file at path. A missing file yields defaults; a
// malformed one is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}
