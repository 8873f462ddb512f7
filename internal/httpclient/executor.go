package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Executor handles single-attempt HTTP execution with JSON decoding.
// Each call maps to exactly one upstream request; retry and rate-limit
// policy, if any, belongs to the hosting platform.
type Executor struct {
	logger       *zap.Logger
	http         *http.Client
	upstreamTag  string
	errorHandler func(status int, body []byte) error
}

// New creates an Executor. errorHandler is called on 4xx/5xx responses to produce an
// upstream-specific error. If nil, a default error is returned.
func New(
	logger *zap.Logger,
	httpClient *http.Client,
	upstreamTag string,
	errorHandler func(status int, body []byte) error,
) *Executor {
	return &Executor{
		logger:       logger,
		http:         httpClient,
		upstreamTag:  upstreamTag,
		errorHandler: errorHandler,
	}
}

// DoJSON executes req once, then JSON-decodes the response into out.
func (e *Executor) DoJSON(req *http.Request, out any) error {
	start := time.Now()
	resp, err := e.http.Do(req)
	if err != nil {
		e.logger.Warn(e.upstreamTag+".http_failed",
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return fmt.Errorf("%s request failed: %w", e.upstreamTag, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s read body: %w", e.upstreamTag, err)
	}
	elapsed := time.Since(start)

	if resp.StatusCode >= 400 {
		e.logger.Warn(e.upstreamTag+".http_error",
			zap.Int("status", resp.StatusCode),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", elapsed))
		if e.errorHandler != nil {
			return e.errorHandler(resp.StatusCode, body)
		}
		return fmt.Errorf("%s returned %d", e.upstreamTag, resp.StatusCode)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			e.logger.Warn(e.upstreamTag+".decode_failed",
				zap.Error(err),
				zap.String("url", req.URL.String()),
				zap.String("body", string(body)))
			return fmt.Errorf("decode failed: %w", err)
		}
	}

	e.logger.Debug(e.upstreamTag+".http_success",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))

	return nil
}
