package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/nathanbrn/igniteShop/internal/catalog"
	"github.com/nathanbrn/igniteShop/internal/config"
	apphttp "github.com/nathanbrn/igniteShop/internal/http"
	"github.com/nathanbrn/igniteShop/internal/modules/checkout"
	"github.com/nathanbrn/igniteShop/internal/modules/products"
	"github.com/nathanbrn/igniteShop/internal/static"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey)
	productSvc := products.NewService(client)
	checkoutSvc := checkout.NewService(client, cfg.CheckoutSuccessURL(), cfg.CheckoutCancelURL())

	renderer := static.NewProductPageRenderer(productSvc, cfg.StoreName)
	pages := static.NewCache(renderer, cfg.RevalidateInterval, logger)

	// Pre-render the enumerated product set before accepting traffic.
	// A product declared here that cannot be loaded is a startup failure.
	if err := pages.Prerender(context.Background(), cfg.PrerenderProductIDs); err != nil {
		log.Fatalf("failed to prerender product pages: %v", err)
	}
	logger.Info("pages_prerendered", "count", len(cfg.PrerenderProductIDs))

	home := ""
	if len(cfg.PrerenderProductIDs) > 0 {
		home = cfg.PrerenderProductIDs[0]
	}
	r := apphttp.NewRouter(logger, pages, checkoutSvc, home)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server_listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown_started")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "err", err)
		os.Exit(1)
	}
	logger.Info("shutdown_complete")
}
