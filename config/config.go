// Package config loads the console's wiring configuration from file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds console configuration.
type Config struct {
	API     APIConfig
	State   StateConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

// APIConfig holds the remote boundary settings.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// StateConfig holds durable client-state settings.
type StateConfig struct {
	Dir string
}

// AuthConfig holds guard and login settings.
type AuthConfig struct {
	LoginPath string `mapstructure:"login_path"`
	// SealKey is the hex-encoded 32-byte key for the dev API server.
	SealKey string `mapstructure:"seal_key"`
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// ASSETCONSOLE_, e.g. ASSETCONSOLE_API_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:3000/api")
	v.SetDefault("state.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "assetconsole"))
	v.SetDefault("auth.login_path", "/login")
	v.SetDefault("auth.seal_key", "")
	v.SetDefault("logging.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ASSETCONSOLE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "assetconsole"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ASSETCONSOLE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
