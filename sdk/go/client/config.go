package client

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zeusync/proboj/internal/core/observability/log"
	"gopkg.in/yaml.v3"
)

// Config holds configuration for the client
type Config struct {
	Log log.Config `yaml:"log"`

	// MaxMessageSize caps the length of one state line in bytes. Zero means
	// unlimited.
	MaxMessageSize int `yaml:"max_message_size"`
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		Log:            log.DefaultConfig(),
		MaxMessageSize: 0,
	}
}

// LoadConfig reads a YAML configuration from r on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode client config: %w", err)
	}
	if cfg.MaxMessageSize < 0 {
		return Config{}, fmt.Errorf("max_message_size must not be negative, got %d", cfg.MaxMessageSize)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}
