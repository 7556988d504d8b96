package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"nexus-storefront/internal/auth"
	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/config"
	"nexus-storefront/internal/httpserver"
	"nexus-storefront/internal/logging"
	"nexus-storefront/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("api", "info", "json")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("api", cfg.App.LogLevel, cfg.App.LogFormat)

	ctx := context.Background()
	kv, closeKV, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.FilePath, cfg.Storage.RedisURL, cfg.Storage.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("open storage")
	}
	defer closeKV()

	var api backend.API
	if cfg.Backend.UseMock {
		log.Info().Msg("using mock backend")
		api = backend.NewMock()
	} else {
		api = backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	}

	carts := cart.NewManager(kv, cfg.Cart.KeyPrefix, log)
	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authSvc := auth.NewService(api, tokens, log)

	srv, err := httpserver.New(cfg.App.Addr, log, httpserver.Deps{
		Backend:       api,
		Carts:         carts,
		Auth:          authSvc,
		KV:            kv,
		SessionCookie: cfg.Cart.SessionCookie,
		AllowOrigins:  cfg.CORS.AllowOrigins,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.App.Addr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("server stopped")
	}
}
