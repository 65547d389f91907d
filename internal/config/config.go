package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Environment     string        `split_words:"true" default:"development"`
	ListenAddress   string        `split_words:"true" default:":8080"`
	AllowedOrigin   string        `split_words:"true" default:"*"`
	StorageDriver   string        `split_words:"true" default:"memory"`
	PostgresDSN     string        `split_words:"true"`
	DefaultPageSize int64         `split_words:"true" default:"20"`
	MaxPageSize     int64         `split_words:"true" default:"100"`
	CacheTTL        time.Duration `split_words:"true" default:"5m"`
	SeedCorpus      bool          `split_words:"true" default:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("ch", config); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "production"
}

// UsesPostgres returns whether the PostgreSQL storage driver is configured
func (config *Config) UsesPostgres() bool {
	return config.StorageDriver == "postgres"
}
