package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feira_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feira_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	orderOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feira_order_operations_total",
			Help: "Total number of order lifecycle operations",
		},
		[]string{"operation", "status"},
	)
)

// MetricsMiddleware records per-request Prometheus metrics.
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Handle records request count and latency, labeled by the route pattern so
// that path parameters do not explode the cardinality.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		path := c.Path()
		if path == "" {
			path = c.Request().URL.Path
		}

		httpRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()
		httpRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(time.Since(start).Seconds())

		return err
	}
}

// RecordOrderOperation counts an order lifecycle operation outcome, e.g.
// ("checkout", true) or ("mark_delivered", false).
func RecordOrderOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	orderOperations.WithLabelValues(operation, status).Inc()
}
