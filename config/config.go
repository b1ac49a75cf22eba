package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. Environment
// variables with the KALSHI_ prefix override file values, so a config file
// is optional when credentials come from the environment.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment overrides, KALSHI_ prefixed
	bindEnv(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".kalshictl"))
		}

		// Check /etc
		v.AddConfigPath("/etc/kalshictl/")
	}

	// Read config file; a missing file is fine when the environment
	// supplies the credentials
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Kalshi defaults
	v.SetDefault("kalshi.demo_mode", false)
	v.SetDefault("kalshi.timeout", "30s")

	// Safety defaults
	v.SetDefault("safety.dry_run", true)
	v.SetDefault("safety.confirm_order", true)
	v.SetDefault("safety.show_details", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// bindEnv maps KALSHI_ environment variables onto config keys. Bindings are
// explicit so KALSHI_API_KEY works without a doubled prefix.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("kalshi.api_key", "KALSHI_API_KEY")
	_ = v.BindEnv("kalshi.api_secret", "KALSHI_API_SECRET")
	_ = v.BindEnv("kalshi.base_url", "KALSHI_BASE_URL")
	_ = v.BindEnv("kalshi.demo_mode", "KALSHI_DEMO_MODE")
	_ = v.BindEnv("kalshi.timeout", "KALSHI_TIMEOUT")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Kalshi.APIKey == "" || cfg.Kalshi.APIKey == "your-api-key-here" {
		return fmt.Errorf("kalshi.api_key must be set to a valid API key")
	}

	if cfg.Kalshi.APISecret == "" {
		return fmt.Errorf("kalshi.api_secret must be set")
	}

	if cfg.Kalshi.Timeout <= 0 {
		return fmt.Errorf("kalshi.timeout must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
