package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr      string     `env:"HTTP_ADDR" envDefault:":8000"`
	DataFile      string     `env:"DATA_FILE" envDefault:"game-data.json"`
	ConfigFile    string     `env:"CONFIG_FILE" envDefault:"config.json"`
	StaticDir     string     `env:"STATIC_DIR" envDefault:"../web"`
	AdminPassword string     `env:"ADMIN_PASSWORD" envDefault:"captain"`
	LogLevel      slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
