package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devillabs/cms-api/internal/infrastructure/httpserver/middleware"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "The HTTP request latencies in seconds",
		},
		[]string{"method", "endpoint"},
	)

	rateLimitRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Requests rejected by the per-client sliding window limiter",
		},
		[]string{"scope"},
	)

	variantFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "media_variant_failures_total",
			Help: "Image variants that could not be generated or stored",
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, rateLimitRejections, variantFailures)
}

// VariantFailures is handed to the media pipeline so its failures show up on /metrics.
func VariantFailures() *prometheus.CounterVec {
	return variantFailures
}

func defaultMetricSet() middleware.MetricSet {
	return middleware.MetricSet{
		RequestsTotal:       requestsTotal,
		RequestDuration:     requestDuration,
		RateLimitRejections: rateLimitRejections,
	}
}

func (s *Server) logMetricsInitialization() {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(map[string]interface{}{
		"http_requests_total":          "Counter for HTTP requests by method, endpoint, status",
		"http_request_duration":        "Histogram for HTTP request duration by method, endpoint",
		"rate_limit_rejections_total":  "Counter for 429 responses by scope",
		"media_variant_failures_total": "Counter for failed image variants by variant",
		"metrics_endpoint":             "/metrics",
	}).Debug("Available Prometheus metrics")
}

func (s *Server) metricsEndpoint(c echo.Context) error {
	promhttp.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
