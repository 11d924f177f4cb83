package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/anyulbade/billplz/pkg/billplz"
)

var ErrMissingAPIKey = errors.New("API key not found. Set BILLPLZ_API_KEY env var or add api_key to ~/.billplz/config.toml")

type Config struct {
	APIKey      string
	Environment string
	BaseURL     string
	LogLevel    string
	Port        string
	GinMode     string
	DatabaseURL string
	AutoMigrate bool
}

// DefaultPath is ~/.billplz/config.toml, or "" when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".billplz", "config.toml")
}

// Load reads the TOML config file at path (DefaultPath when empty) and
// overlays BILLPLZ_* environment variables. A missing or unreadable file is
// not an error; a missing API key is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("BILLPLZ")

	for _, key := range []string{"api_key", "environment", "base_url", "log_level", "port", "gin_mode", "database_url", "auto_migrate"} {
		_ = v.BindEnv(key)
	}

	v.SetDefault("environment", "staging")
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("auto_migrate", false)

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("ignoring unreadable config file")
		}
	}

	cfg := &Config{
		APIKey:      v.GetString("api_key"),
		Environment: v.GetString("environment"),
		BaseURL:     v.GetString("base_url"),
		LogLevel:    v.GetString("log_level"),
		Port:        v.GetString("port"),
		GinMode:     v.GetString("gin_mode"),
		DatabaseURL: v.GetString("database_url"),
		AutoMigrate: v.GetBool("auto_migrate"),
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func (c *Config) BillplzEnvironment() billplz.Environment {
	return billplz.ParseEnvironment(c.Environment)
}

// NewClient builds a client for the configured environment, or for BaseURL
// when one is set.
func (c *Config) NewClient(opts ...billplz.Option) *billplz.Client {
	if c.BaseURL != "" {
		return billplz.NewWithBaseURL(c.BaseURL, c.APIKey, opts...)
	}
	return billplz.New(c.BillplzEnvironment(), c.APIKey, opts...)
}
