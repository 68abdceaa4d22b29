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
	Server     ServerConfig
	Planner    PlannerConfig
	Completion CompletionConfig
	Store      StoreConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// PlannerConfig holds settings for the itinerary planner.
type PlannerConfig struct {
	// CompletionTimeout bounds each individual completion call.
	CompletionTimeout time.Duration `env:"PLANNER_COMPLETION_TIMEOUT" envDefault:"60s"`

	// RetryAttempts is the number of attempts per completion call.
	RetryAttempts int `env:"PLANNER_RETRY_ATTEMPTS" envDefault:"2"`

	// MaxTripDays rejects trips longer than this many days.
	MaxTripDays int `env:"PLANNER_MAX_TRIP_DAYS" envDefault:"30"`

	// WebContext grounds flight discovery in current web data.
	WebContext bool `env:"PLANNER_WEB_CONTEXT" envDefault:"false"`
}

// CompletionConfig holds Gemini API settings.
type CompletionConfig struct {
	APIKey          string  `env:"GEMINI_API_KEY"`
	Model           string  `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Temperature     float64 `env:"GEMINI_TEMPERATURE" envDefault:"0.7"`
	MaxOutputTokens int     `env:"GEMINI_MAX_OUTPUT_TOKENS" envDefault:"16384"`
}

// StoreConfig holds component persistence settings.
type StoreConfig struct {
	// Backend selects the component store: "memory" or "postgres".
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`

	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string `env:"STORE_POSTGRES_DSN"`
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
	// Load .env file if it exists (ignore error if file doesn't exist)
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

	if cfg.Planner.CompletionTimeout <= 0 {
		return fmt.Errorf("PLANNER_COMPLETION_TIMEOUT must be positive")
	}
	if cfg.Planner.RetryAttempts < 1 {
		return fmt.Errorf("PLANNER_RETRY_ATTEMPTS must be at least 1")
	}
	if cfg.Planner.MaxTripDays < 1 {
		return fmt.Errorf("PLANNER_MAX_TRIP_DAYS must be at least 1")
	}

	if cfg.Completion.Temperature < 0 || cfg.Completion.Temperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE must be between 0 and 2, got %g", cfg.Completion.Temperature)
	}
	if cfg.Completion.MaxOutputTokens < 1 {
		return fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive")
	}

	switch cfg.Store.Backend {
	case "memory":
	case "postgres":
		if cfg.Store.PostgresDSN == "" {
			return fmt.Errorf("STORE_POSTGRES_DSN is required when STORE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: memory, postgres; got %q", cfg.Store.Backend)
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
