package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/fakestore"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
		File:      cfg.LogFile,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogSvc := catalogapp.NewService(fakestore.NewClient(cfg.CatalogURL, cfg.CatalogTimeout), log)

	// Cart
	session := cartapp.NewSession()
	cartSvc := cartapp.NewService(adapter.NewCatalogServiceReader(catalogSvc), session, log)
	log.Info("session started", slog.String("session", session.ID))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(log, cfg.CORSOrigins, catalogSvc, cartSvc),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// a failed fetch is a page state, not a reason to exit
		_ = catalogSvc.Load(gctx)
		return nil
	})

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		shutdown.Drain(log, "http", 10*time.Second, server.Shutdown, server.Close)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("storefront stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
