package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Tracks served quote requests by response status code.
	QuoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_quote_requests_total",
			Help: "Total number of stock quote requests served (by status code).",
		},
		[]string{"status"},
	)

	// Measures duration of outbound requests to the quote-data provider.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_request_duration_seconds",
			Help:    "Duration of quote-data provider requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // 1ms → ~16s
		},
		[]string{"endpoint"},
	)

	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_errors_total",
			Help: "Number of failed quote-data provider lookups",
		},
		[]string{"endpoint"},
	)
)

// ObserveDuration records the time taken since start on the given histogram.
func ObserveDuration(metric *prometheus.HistogramVec, start time.Time, labels ...string) {
	metric.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
}

func IncQuoteRequest(status string) {
	QuoteRequestsTotal.WithLabelValues(status).Inc()
}
