package main

import (
	"context"

	"github.com/shopspring/decimal"

	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/config"
	"nexus-storefront/internal/domain"
	"nexus-storefront/internal/logging"
	"nexus-storefront/internal/storage"
)

// Seeds a demo cart mirror into the configured KV store for manual testing.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("seed", "info", "json")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("seed", cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()
	kv, closeKV, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.FilePath, cfg.Storage.RedisURL, cfg.Storage.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("open storage")
	}
	defer closeKV()

	store := cart.New(kv, cfg.Cart.KeyPrefix+":demo", log)
	store.Initialize(ctx)
	store.Clear(ctx)
	store.Add(ctx, domain.CartItem{
		ProductID: 1,
		Name:      "Wireless Headphones",
		Price:     decimal.RequireFromString("199.99"),
		Category:  "Electronics",
	}, 1)
	store.Add(ctx, domain.CartItem{
		ProductID: 5,
		Name:      "Desk Lamp",
		Price:     decimal.RequireFromString("49.99"),
		Category:  "Home & Garden",
	}, 2)

	log.Info().Int("items", store.TotalItems()).Str("subtotal", store.Subtotal().String()).Msg("demo cart seeded")
}
