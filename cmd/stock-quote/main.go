package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Checker-Finance/stock-quote/internal/api"
	"github.com/Checker-Finance/stock-quote/internal/provider/yahoo"
	"github.com/Checker-Finance/stock-quote/internal/quote"
	"github.com/Checker-Finance/stock-quote/pkg/config"
	"github.com/Checker-Finance/stock-quote/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Info("starting [stock-quote]...")

	// --- Quote-data provider ---
	yh := yahoo.New(logger.L(), cfg.ProviderBaseURL, cfg.ProviderTimeout)

	// --- Quote service (core lookup logic) ---
	svc := quote.NewService(logger.L(), yh)

	app := fiber.New()
	h := api.NewQuoteHandler(logger.L(), svc)
	api.RegisterRoutes(app, h)

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	logg.Infow("[stock-quote] running",
		"provider", yh.Name(),
		"provider_base_url", cfg.ProviderBaseURL)

	// --- Main process stays alive until interrupted ---
	<-ctx.Done()
	stop()
	logg.Info("shutting down [stock-quote]...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.ShutdownWithContext(shutdownCtx) //nolint:errcheck
}
