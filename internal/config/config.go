package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting the process needs. Parsed once at
// startup; missing required values abort the process before anything opens.
type Config struct {
	Port       string        `env:"CYRA_PORT" envDefault:"8080"`
	DBPath     string        `env:"CYRA_DB_PATH"`
	SecretKey  string        `env:"CYRA_SECRET,required"`
	TokenTTL   time.Duration `env:"CYRA_TOKEN_TTL" envDefault:"168h"`
	BcryptCost int           `env:"CYRA_BCRYPT_COST" envDefault:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "cyra.db")
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("CYRA_TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("CYRA_BCRYPT_COST out of bcrypt range: %d", cfg.BcryptCost)
	}

	return cfg, nil
}
