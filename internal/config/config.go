package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds application runtime configuration.
type Config struct {
	Env             string        `env:"APP_ENV" env-default:"development"`
	HTTPPort        string        `env:"HTTP_PORT" env-default:"4000"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	DefaultCurrency string        `env:"CURRENCY_CODE" env-default:"GBP"`
	PhoneRegion     string        `env:"PHONE_REGION" env-default:"GB"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" env-default:"true"`
	RateLimit       int           `env:"RATE_LIMIT_PER_MINUTE" env-default:"200"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads environment variables and .env (if present).
// Missing required settings abort startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first missing or malformed setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be positive")
	}
	return nil
}
