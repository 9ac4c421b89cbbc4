package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the server-side configuration loaded from tibasic.yml.
// It only supplies fallback values; clients that support
// workspace/configuration override them per document.
type Config struct {
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
	Log         LogConfig         `mapstructure:"log"`
}

// DiagnosticsConfig represents diagnostics configuration
type DiagnosticsConfig struct {
	// MaxProblems caps the number of uppercase-run warnings per document
	// when the client provides no maxNumberOfProblems setting.
	MaxProblems int `mapstructure:"max_problems"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load loads the configuration from tibasic.yml or tibasic.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("diagnostics.max_problems", 1000)
	v.SetDefault("log.verbose", false)

	// Set config name and paths
	v.SetConfigName("tibasic")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support (TIBASIC_DIAGNOSTICS_MAX_PROBLEMS)
	v.SetEnvPrefix("TIBASIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Diagnostics.MaxProblems <= 0 {
		return fmt.Errorf("diagnostics.max_problems must be positive, got: %d", cfg.Diagnostics.MaxProblems)
	}
	return nil
}
