package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied when neither the environment nor a config file sets a value.
const (
	DefaultPort           = 5000
	DefaultEnvironment    = "development"
	DefaultLogLevel       = "info"
	DefaultAPIURL         = "http://localhost:5000"
	DefaultMaxConns       = 20
	DefaultConnectTimeout = 2 * time.Second
	DefaultIdleTimeout    = 30 * time.Second
)

// envBindings maps configuration keys to the environment variables that set them.
var envBindings = map[string]string{
	"database.url":             "DATABASE_URL",
	"database.max_conns":       "DB_MAX_CONNS",
	"database.connect_timeout": "DB_CONNECT_TIMEOUT",
	"database.idle_timeout":    "DB_IDLE_TIMEOUT",
	"server.port":              "PORT",
	"server.environment":       "APP_ENV",
	"server.log_level":         "LOG_LEVEL",
	"client.api_url":           "API_URL",
	"client.log_level":         "LOG_LEVEL",
}

var validate = validator.New()

// Load reads the server configuration from environment variables and, if present,
// a taskpad.yaml file in the working directory or /etc/taskpad.
// Environment variables take precedence over values from config files.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadClient reads only the client section. The database settings are not
// required here, so the terminal client runs without server credentials.
func LoadClient() (*ClientConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	// Unmarshal the whole tree so environment overrides apply to nested keys.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}

	if err := validate.Struct(&cfg.Client); err != nil {
		return nil, fmt.Errorf("invalid client configuration: %w", err)
	}

	return &cfg.Client, nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.environment", DefaultEnvironment)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("database.max_conns", DefaultMaxConns)
	v.SetDefault("database.connect_timeout", DefaultConnectTimeout)
	v.SetDefault("database.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("client.api_url", DefaultAPIURL)
	v.SetDefault("client.log_level", DefaultLogLevel)

	v.SetConfigName("taskpad")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskpad")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return v, nil
}
