package main

import (
	"context"
	"flag"
	"os"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/logger"

	"github.com/rs/zerolog/log"
)

// Usage: migrate [-seed] <up|down|status|version|redo|reset> [args]
func main() {
	seed := flag.Bool("seed", true, "create the external location after migrating up")
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	lg := logger.New(logger.Options{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if cfg.DB.Driver != config.DriverPostgres {
		lg.Fatal().Str("driver", cfg.DB.Driver).Msg("SQL migrations target postgres; sqlite uses auto-migrate")
	}

	db, err := database.Open(cfg.DB, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("connecting to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		lg.Fatal().Err(err).Msg("getting sql handle")
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(context.Background(), sqlDB, command, args...); err != nil {
		lg.Error().Err(err).Str("command", command).Msg("migration failed")
		os.Exit(1)
	}

	if command == "up" && *seed {
		if _, err := database.Seed(db, cfg.Seed); err != nil {
			lg.Error().Err(err).Msg("seeding external location")
			os.Exit(1)
		}
	}
	lg.Info().Str("command", command).Msg("migration finished")
}
