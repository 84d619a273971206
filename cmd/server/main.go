package main

import (
	"os"
	"os/signal"
	"syscall"

	"stockroom/internal/config"
	"stockroom/internal/database"
	"stockroom/internal/logger"
	"stockroom/internal/metrics"
	"stockroom/internal/server"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	lg := logger.New(logger.Options{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := database.Open(cfg.DB, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("connecting to database")
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			lg.Fatal().Err(err).Msg("migrating schema")
		}
	}
	seed, err := database.Seed(db, cfg.Seed)
	if err != nil {
		lg.Fatal().Err(err).Msg("seeding external location")
	}
	lg.Info().Str("location", seed.Name).Uint("id", seed.ID).Msg("external location ready")

	app := server.New(server.Options{
		DB:          db,
		Log:         lg,
		Metrics:     metrics.New(),
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		lg.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			lg.Error().Err(err).Msg("shutdown")
		}
	}()

	lg.Info().Str("port", cfg.HTTP.Port).Str("driver", cfg.DB.Driver).Msg("server listening")
	if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
		lg.Fatal().Err(err).Msg("server stopped")
	}
}
