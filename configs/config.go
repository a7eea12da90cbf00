package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Synthetics service configuration
	Syngine SyngineConfig `mapstructure:"syngine"`

	// Output configuration
	Output OutputConfig `mapstructure:"output"`
}

// SyngineConfig contains synthetics service settings
type SyngineConfig struct {
	Endpoint  string        `mapstructure:"endpoint"`
	Model     string        `mapstructure:"model"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Precision       int  `mapstructure:"precision"`
	IncludeMetadata bool `mapstructure:"include_metadata"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Syngine.Endpoint == "" {
		return fmt.Errorf("syngine endpoint must be set")
	}

	if config.Syngine.Model == "" {
		return fmt.Errorf("syngine model must be set")
	}

	if config.Syngine.Timeout <= 0 {
		return fmt.Errorf("syngine timeout must be positive")
	}

	if config.Output.Precision < 0 {
		return fmt.Errorf("output precision cannot be negative")
	}

	return nil
}
