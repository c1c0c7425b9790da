package util

import (
	"fmt"
	"time"
	
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	APIBaseURL      string        `mapstructure:"API_BASE_URL"`
	HubURL          string        `mapstructure:"HUB_URL"`
	Username        string        `mapstructure:"USERNAME"`
	Password        string        `mapstructure:"PASSWORD"`
	HTTPTimeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	SettleDelay     time.Duration `mapstructure:"SETTLE_DELAY"`
	ToastDuration   time.Duration `mapstructure:"TOAST_DURATION"`
	PreviewSize     int           `mapstructure:"PREVIEW_SIZE"`
	RefreshInterval time.Duration `mapstructure:"REFRESH_INTERVAL"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	// Set defaults for non-sensitive config
	viper.SetDefault("HTTP_TIMEOUT", "15s")
	viper.SetDefault("SETTLE_DELAY", "2s")
	viper.SetDefault("TOAST_DURATION", "8s")
	viper.SetDefault("PREVIEW_SIZE", 6)
	viper.SetDefault("REFRESH_INTERVAL", "1m")
	
	// Prefer environment variables over config file
	viper.AutomaticEnv()
	
	// Load config file
	viper.SetConfigFile(path)
	if err = viper.ReadInConfig(); err != nil {
		return
	}
	
	// Unmarshal config into struct
	err = viper.UnmarshalExact(&config)
	if err != nil {
		return
	}
	
	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if config.HubURL == "" {
		return fmt.Errorf("HUB_URL is required")
	}
	if config.SettleDelay <= 0 {
		return fmt.Errorf("SETTLE_DELAY must be positive")
	}
	if config.ToastDuration <= 0 {
		return fmt.Errorf("TOAST_DURATION must be positive")
	}
	if config.PreviewSize <= 0 {
		return fmt.Errorf("PREVIEW_SIZE must be positive")
	}
	
	return nil
}
