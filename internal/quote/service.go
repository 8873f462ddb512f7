package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Checker-Finance/stock-quote/internal/provider"
)

// Quote is the payload returned for a successful lookup.
type Quote struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Symbol string  `json:"symbol"`
	Time   int64   `json:"time"`
}

// Service resolves a current price for a ticker symbol through a quote-data
// provider and shapes it into the response payload.
type Service struct {
	logger   *zap.Logger
	provider provider.Provider
	now      func() time.Time
}

// NewService creates a Service backed by p.
func NewService(logger *zap.Logger, p provider.Provider) *Service {
	return &Service{
		logger:   logger,
		provider: p,
		now:      time.Now,
	}
}

// GetQuote looks up the current price for symbol and builds the response
// payload. symbol must already be normalized to uppercase.
func (s *Service) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	info, err := s.provider.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%s lookup: %w", s.provider.Name(), err)
	}

	price, ok := info.ResolvePrice()
	if !ok {
		s.logger.Warn("quote.no_price",
			zap.String("provider", s.provider.Name()),
			zap.String("symbol", symbol))
		return nil, ErrPriceUnavailable
	}

	now := s.now()
	return &Quote{
		Date:   now.Format("2006-01-02"),
		Price:  roundPrice(price),
		Symbol: symbol,
		Time:   now.Unix(),
	}, nil
}

// roundPrice rounds to 2 decimal places, half away from zero.
func roundPrice(p float64) float64 {
	return decimal.NewFromFloat(p).Round(2).InexactFloat64()
}
