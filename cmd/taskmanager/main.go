package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FCT-TaskManager/Backend/db"
	"github.com/FCT-TaskManager/Backend/internal/auth"
	"github.com/FCT-TaskManager/Backend/internal/config"
	"github.com/FCT-TaskManager/Backend/internal/router"
	"github.com/FCT-TaskManager/Backend/internal/scheduler"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Read()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}

	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.NewConsoleWriter())
	}

	if err := auth.SetSecret(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to configure JWT")
	}

	database, err := db.Connect(cfg.Postgres.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	st := store.New(database)

	reminders := scheduler.New(services.NewNotificationService(st))
	reminders.Start()
	defer reminders.Stop()

	r := router.NewRouter(st)

	log.Info().Str("port", cfg.Port).Msg("starting server")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
