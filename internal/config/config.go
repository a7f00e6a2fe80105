package config

import (
	"fmt"
	"os"

	"github.com/jchantrell/displayfmt/internal/datefmt"
	"github.com/spf13/viper"
)

type Config struct {
	ServerOffset int    `mapstructure:"server_offset"`
	LocalOffset  string `mapstructure:"local_offset"`
	Layout       string `mapstructure:"layout"`
	Database     string `mapstructure:"database"`
	Workers      int    `mapstructure:"workers"`
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
}

// Load initializes and loads configuration from file
func Load(cfgFile string) (*Config, error) {
	// Set defaults
	viper.SetDefault("server_offset", datefmt.DefaultServerOffset)
	viper.SetDefault("local_offset", LocalOffsetAuto)
	viper.SetDefault("layout", "full")
	viper.SetDefault("database", "displayfmt.db")
	viper.SetDefault("workers", 4)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")

	// Config file handling
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName("displayfmt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DISPLAYFMT")
	viper.AutomaticEnv()

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values that Load cannot default away
func (c *Config) Validate() error {
	if err := validateOffset("server_offset", c.ServerOffset); err != nil {
		return fmt.Errorf("invalid offset configuration: %w", err)
	}

	if _, err := parseLocalOffset(c.LocalOffset); err != nil {
		return fmt.Errorf("invalid offset configuration: %w", err)
	}

	if _, err := datefmt.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("invalid layout configuration: %w", err)
	}

	if c.Workers < 1 {
		return fmt.Errorf("invalid workers configuration: must be at least 1, got %d", c.Workers)
	}

	return nil
}

// DateLayout returns the configured date layout
func (c *Config) DateLayout() (datefmt.Layout, error) {
	return datefmt.ParseLayout(c.Layout)
}
