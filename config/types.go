package config

import (
	"time"

	"github.com/s0up4200/kalshictl/kalshi"
)

// Config represents the complete configuration structure
type Config struct {
	Kalshi  KalshiConfig  `mapstructure:"kalshi"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// KalshiConfig holds Kalshi API credentials and connection details
type KalshiConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	BaseURL   string        `mapstructure:"base_url"`
	DemoMode  bool          `mapstructure:"demo_mode"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// EffectiveBaseURL resolves the base URL to use. demo_mode always selects
// the demo environment, overriding any configured base_url.
func (c KalshiConfig) EffectiveBaseURL() string {
	if c.DemoMode {
		return kalshi.DemoBaseURL
	}
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return kalshi.ProductionBaseURL
}

// FilterConfig contains named market filter expressions
type FilterConfig map[string]string

// SafetyConfig contains safety-related settings for order placement
type SafetyConfig struct {
	DryRun       bool `mapstructure:"dry_run"`
	ConfirmOrder bool `mapstructure:"confirm_order"`
	ShowDetails  bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
