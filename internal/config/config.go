// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Providers ProviderConfig
	Session   SessionConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds timeout settings for travel search operations.
type SearchConfig struct {
	ProviderTimeout time.Duration `env:"TIMEOUT_PER_PROVIDER" envDefault:"5s"`
}

// ProviderConfig holds the external travel API settings.
type ProviderConfig struct {
	// FlightBaseURL is the flight search API host (Sky Scrapper-style)
	FlightBaseURL string `env:"FLIGHT_API_BASE_URL" envDefault:"https://sky-scrapper.p.rapidapi.com"`

	// HotelBaseURL is the hotel search API host (Booking-style)
	HotelBaseURL string `env:"HOTEL_API_BASE_URL" envDefault:"https://booking-com15.p.rapidapi.com"`

	// APIKey is the shared RapidAPI-style gateway key
	APIKey string `env:"TRAVEL_API_KEY"`

	// Currency is the ISO 4217 code all prices are displayed in
	Currency string `env:"DEFAULT_CURRENCY" envDefault:"USD"`

	// Market and CountryCode are passed through to the flight provider
	Market      string `env:"DEFAULT_MARKET" envDefault:"en-US"`
	CountryCode string `env:"DEFAULT_COUNTRY_CODE" envDefault:"US"`

	// Language is passed through to the hotel provider
	Language string `env:"DEFAULT_LANGUAGE" envDefault:"en-us"`
}

// SessionConfig holds itinerary session persistence settings.
type SessionConfig struct {
	// Backend selects the snapshot store: memory or redis
	Backend string `env:"SESSION_BACKEND" envDefault:"memory"`

	// RedisAddr is the Redis host:port (redis backend only)
	RedisAddr string `env:"SESSION_REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the optional Redis auth password
	RedisPassword string `env:"SESSION_REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"SESSION_REDIS_DB" envDefault:"0"`

	// TTL is how long an idle session's itinerary survives. Each mutation
	// refreshes the expiry, so this is the session lifetime.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.ProviderTimeout <= 0 {
		return fmt.Errorf("TIMEOUT_PER_PROVIDER must be positive")
	}

	validBackends := map[string]bool{"memory": true, "redis": true}
	if !validBackends[cfg.Session.Backend] {
		return fmt.Errorf("SESSION_BACKEND must be one of: memory, redis; got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.Session.Backend == "redis" && cfg.Session.RedisAddr == "" {
		return fmt.Errorf("SESSION_REDIS_ADDR is required for the redis backend")
	}

	if cfg.Providers.Currency == "" {
		return fmt.Errorf("DEFAULT_CURRENCY must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
