package api

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Checker-Finance/stock-quote/internal/metrics"
	"github.com/Checker-Finance/stock-quote/internal/quote"
)

// QuoteService defines the lookup capability used by the handler.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*quote.Quote, error)
}

// QuoteHandler handles HTTP API requests for stock quotes.
type QuoteHandler struct {
	logger  *zap.Logger
	service QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(logger *zap.Logger, service QuoteService) *QuoteHandler {
	return &QuoteHandler{
		logger:  logger,
		service: service,
	}
}

// GetQuoteHandler serves both the query form (/api/stock_quote?symbol=AAPL)
// and the path form (/api/stock_quote/AAPL) of the quote lookup.
func (h *QuoteHandler) GetQuoteHandler(c *fiber.Ctx) error {
	invocationID := uuid.NewString()
	h.logger.Info("stock_quote.triggered",
		zap.String("invocation_id", invocationID),
		zap.String("url", c.OriginalURL()))

	symbol := extractSymbol(c)
	if symbol == "" {
		metrics.IncQuoteRequest("400")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMissingSymbol})
	}
	symbol = strings.ToUpper(symbol)

	q, err := h.service.GetQuote(c.Context(), symbol)
	if err != nil {
		if errors.Is(err, quote.ErrPriceUnavailable) {
			metrics.IncQuoteRequest("404")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": errPriceNotFound(symbol)})
		}
		// Detail stays in the logs; the body carries the generic message only.
		h.logger.Error("stock_quote.failed",
			zap.String("invocation_id", invocationID),
			zap.String("symbol", symbol),
			zap.Error(err))
		metrics.IncQuoteRequest("500")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": errInternal})
	}

	h.logger.Info("stock_quote.success",
		zap.String("invocation_id", invocationID),
		zap.String("symbol", q.Symbol),
		zap.Float64("price", q.Price))
	metrics.IncQuoteRequest("200")
	return c.Status(fiber.StatusOK).JSON(q)
}
