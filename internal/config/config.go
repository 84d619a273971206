package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "STOCKROOM"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	DB   DBConfig
	Seed SeedConfig
}

type AppConfig struct {
	Env      string `envconfig:"STOCKROOM_APP_ENV" default:"development"`
	LogLevel string `envconfig:"STOCKROOM_LOG_LEVEL" default:"info"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

type HTTPConfig struct {
	Port        string `envconfig:"STOCKROOM_HTTP_PORT" default:"8080"`
	CORSOrigins string `envconfig:"STOCKROOM_CORS_ALLOWED_ORIGINS" default:"*"`
}

type DBConfig struct {
	Driver      string `envconfig:"STOCKROOM_DB_DRIVER" default:"sqlite"`
	DSN         string `envconfig:"STOCKROOM_DB_DSN" default:"stockroom.db"`
	AutoMigrate bool   `envconfig:"STOCKROOM_DB_AUTO_MIGRATE" default:"true"`
}

// SeedConfig describes the external location every fresh database starts with.
type SeedConfig struct {
	LocationName        string `envconfig:"STOCKROOM_SEED_LOCATION_NAME" default:"Abroad"`
	LocationDescription string `envconfig:"STOCKROOM_SEED_LOCATION_DESCRIPTION" default:"Not a warehouse"`
}

// Load reads an optional .env file and then the STOCKROOM_* environment.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB driver %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("database DSN is required")
	}
	if strings.TrimSpace(c.Seed.LocationName) == "" {
		return fmt.Errorf("seed location name is required")
	}
	return nil
}
