package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	figure.NewFigure(cfg.App.Name, "", true).Print()

	app, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	counts, err := app.Store.LoadAll(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("Starting with partially loaded data store")
	}

	log.Info().Interface("collections", counts).Msg("Data store loaded")

	if err := app.Autosave.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start autosave")
	}
	defer app.Autosave.Stop()

	app.HTTP.Serve()
}
