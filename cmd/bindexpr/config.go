package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// Output formats accepted by the CLI and the config file.
const (
	OutputPlain     = "plain"
	OutputJSON      = "json"
	OutputCanonical = "canonical"
)

// Config holds CLI defaults loaded from an optional YAML file.
type Config struct {
	// MaxDepth is the default bracket nesting bound; 0 means the parser
	// default.
	MaxDepth int `yaml:"max_depth"`
	// Output is the default output format: plain, json, or canonical.
	Output string `yaml:"output"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth: 0,
		Output:   OutputPlain,
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: the defaults are returned so the CLI works out of the box.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.Output {
	case "", OutputPlain, OutputJSON, OutputCanonical:
	default:
		return nil, fmt.Errorf("config %s: unknown output format %q", path, cfg.Output)
	}
	if cfg.Output == "" {
		cfg.Output = OutputPlain
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("config %s: max_depth must be >= 0", path)
	}

	return cfg, nil
}
