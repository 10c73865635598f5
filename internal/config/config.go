package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string  `env:"PORT" envDefault:"8080"`
	Env            string  `env:"ENV" envDefault:"development"`
	DatabaseDriver string  `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN    string  `env:"DATABASE_DSN" envDefault:"passgen.db"`
	StatsEnabled   bool    `env:"STATS_ENABLED" envDefault:"true"`
	WordlistPath   string  `env:"WORDLIST_PATH"`
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("rate limit must be positive, got rps=%v burst=%d",
			cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}
