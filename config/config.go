// Package config loads front-end settings from an optional YAML file
// and CATALOG_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings of the command-line front-end. The core
// library package takes no configuration.
type Config struct {
	// SeedFile is an optional JSON catalog loaded when the REPL starts.
	SeedFile string `mapstructure:"seed_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// AdminPasswordHash is a bcrypt hash. When set, destructive REPL
	// commands prompt for the passphrase before running.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

// Load reads configuration from path, or from catalog.yaml in the
// working directory when path is empty. A missing default file is not
// an error; defaults and environment variables still apply. An
// explicitly given path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("seed_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("admin_password_hash", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
