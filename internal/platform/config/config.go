// Package config loads process configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every setting the server needs. All values come from the
// environment; main loads a .env file first so local development matches the
// original deployment contract.
type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TokenSecret signs and verifies bearer tokens. Rotating it invalidates
	// every issued token, which is the only revocation mechanism there is.
	TokenSecret string `env:"TOKEN_SECRET, required"`

	// PasswordPepper is appended to every plaintext password before hashing.
	PasswordPepper string `env:"BCRYPT_PASSWORD, required"`

	// SaltRounds is the bcrypt cost factor. A missing or non-numeric value
	// fails Load, which the server treats as fatal at startup.
	SaltRounds int `env:"SALT_ROUNDS, required"`

	// StrictErrors switches the HTTP layer from the faithful
	// everything-is-400 contract to 404/500 mapping.
	StrictErrors bool `env:"STRICT_ERRORS, default=false"`

	RunMigrations bool `env:"RUN_MIGRATIONS, default=false"`

	Database DatabaseConfig `env:", prefix=POSTGRES_"`
}

// DatabaseConfig mirrors the POSTGRES_* variables of the original deployment
// plus pool sizing knobs.
type DatabaseConfig struct {
	Host     string `env:"HOST,     default=localhost"`
	Port     string `env:"PORT,     default=5432"`
	User     string `env:"USER,     default=postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"DB,       default=storefront"`

	MaxOpenConns    int           `env:"MAX_OPEN_CONNS,    default=25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME, default=5m"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.SaltRounds < 4 || cfg.SaltRounds > 31 {
		return nil, fmt.Errorf("load config: SALT_ROUNDS %d outside bcrypt range [4,31]", cfg.SaltRounds)
	}
	return &cfg, nil
}
