package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes registers all HTTP routes on the Fiber app.
func RegisterRoutes(app *fiber.App, h *QuoteHandler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
			"checks": fiber.Map{"provider": "ok"},
		})
	})

	// API routes
	api := app.Group("/api")
	api.Get("/stock_quote", h.GetQuoteHandler)
	api.Get("/stock_quote/:symbol", h.GetQuoteHandler)
}
