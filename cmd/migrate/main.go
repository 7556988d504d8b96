package main

import (
	"context"

	"nexus-storefront/internal/config"
	"nexus-storefront/internal/logging"
	"nexus-storefront/internal/migrate"
	"nexus-storefront/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("migrate", "info", "json")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("migrate", cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()
	pool, err := storage.NewPostgresPool(ctx, cfg.Storage.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	log.Info().Msg("migrations applied")
}
