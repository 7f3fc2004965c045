package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the calculator's runtime settings.
type Config struct {
	// Catalog is a YAML catalog file; empty means the built-in catalog.
	Catalog string `yaml:"catalog"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 3000},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file, then applies variables from a
// .env file in the working directory and the process environment. A missing
// file at path yields the defaults; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("HAYDAY_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("HAYDAY_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("HAYDAY_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HAYDAY_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("HAYDAY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values the server cannot use.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	for _, l := range validLevels {
		if c.Log.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (valid: %v)", c.Log.Level, validLevels)
}
