package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Port             string        `envconfig:"PORT" default:"8000"`
	Environment      string        `envconfig:"ENVIRONMENT" default:"development"`
	CatalogURL       string        `envconfig:"CATALOG_URL" default:"https://dummyjson.com"`
	CatalogPageLimit int           `envconfig:"CATALOG_PAGE_LIMIT" default:"20"`
	CatalogTimeout   time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

// Load reads the configuration, preferring a local .env file when present
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, proceeding with environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
