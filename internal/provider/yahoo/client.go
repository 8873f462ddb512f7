package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Checker-Finance/stock-quote/internal/httpclient"
	"github.com/Checker-Finance/stock-quote/internal/metrics"
	"github.com/Checker-Finance/stock-quote/internal/provider"
)

// Client wraps low-level HTTP communication with the Yahoo Finance quote API.
type Client struct {
	logger  *zap.Logger
	baseURL string
	exec    *httpclient.Executor
}

// New constructs a new Yahoo Finance client instance.
func New(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	exec := httpclient.New(logger, httpClient, "yahoo", func(status int, body []byte) error {
		logger.Warn("yahoo.non_200",
			zap.Int("status", status),
			zap.String("body", string(body)))
		return fmt.Errorf("yahoo returned %d", status)
	})
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		exec:    exec,
	}
}

// Name identifies this provider in logs and health output.
func (c *Client) Name() string { return "yahoo-finance" }

type quoteResult struct {
	Symbol             string   `json:"symbol"`
	CurrentPrice       *float64 `json:"currentPrice"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}

type quoteEnvelope struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"quoteResponse"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Lookup fetches the current price snapshot for symbol.
// GET /v7/finance/quote?symbols=<SYMBOL>
//
// An empty result list is not an error: it yields a PriceInfo with no price
// fields, which callers treat as "symbol has no quotable price".
func (c *Client) Lookup(ctx context.Context, symbol string) (*provider.PriceInfo, error) {
	endpoint := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", c.baseURL, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	var env quoteEnvelope
	err = c.exec.DoJSON(req, &env)
	metrics.ObserveDuration(metrics.ProviderRequestDuration, start, "quote")
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("quote").Inc()
		return nil, err
	}

	if apiErr := env.QuoteResponse.Error; apiErr != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("quote").Inc()
		return nil, fmt.Errorf("yahoo quote error: %s: %s", apiErr.Code, apiErr.Description)
	}

	if len(env.QuoteResponse.Result) == 0 {
		c.logger.Debug("yahoo.empty_result", zap.String("symbol", symbol))
		return &provider.PriceInfo{}, nil
	}

	r := env.QuoteResponse.Result[0]
	return &provider.PriceInfo{
		CurrentPrice:       r.CurrentPrice,
		RegularMarketPrice: r.RegularMarketPrice,
	}, nil
}
