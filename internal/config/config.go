package config

import "time"

// Config holds all server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Client   ClientConfig   `mapstructure:"client"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development test production"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the connection string and pool sizing.
type DatabaseConfig struct {
	URL            string        `mapstructure:"url"             validate:"required,url"`
	MaxConns       int32         `mapstructure:"max_conns"       validate:"gt=0"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" validate:"gt=0"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"    validate:"gt=0"`
}

// ClientConfig contains settings used by the terminal client.
type ClientConfig struct {
	APIURL   string `mapstructure:"api_url"   validate:"required,url"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// IsProduction reports whether the server runs in the production environment.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}
