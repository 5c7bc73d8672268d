// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBinary is the tool protoboot makes sure is installed
	DefaultBinary = "protoc"

	// DefaultDelay is the pause before the install command runs
	DefaultDelay = 3 * time.Second
)

// Config holds protoboot configuration
type Config struct {
	Binary      string        `yaml:"binary"`
	Delay       time.Duration `yaml:"delay"`
	Debug       bool          `yaml:"debug"`
	RegistryDir string        `yaml:"registry_dir"` // overrides the built-in registry entries
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Binary: DefaultBinary,
		Delay:  DefaultDelay,
	}
}

// LoadConfig loads configuration from path. An empty path returns the
// defaults without touching the filesystem.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("config: binary must not be empty")
	}
	if c.Delay < 0 {
		return fmt.Errorf("config: delay must not be negative, got %s", c.Delay)
	}
	return nil
}
