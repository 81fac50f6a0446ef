package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"tandoor/config"
	"tandoor/di"
	"tandoor/helper"
	"tandoor/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	if err := app.Menu.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed menu catalog")
	}

	app.HTTP.Serve()
}
