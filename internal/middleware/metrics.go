package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/paramtour/paramtour/internal/errs"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsMiddleware records per-request Prometheus metrics keyed by route
// template (not raw URL, to keep cardinality bounded), method and status.
type MetricsMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetricsMiddleware constructs and registers the metric vectors on the
// default registry. Construct it once; duplicate registration panics.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "paramtour_http_requests_total",
			Help: "Total number of HTTP requests handled, by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paramtour_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Collect returns the Echo middleware that observes every request.
func (m *MetricsMiddleware) Collect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			// The global error handler writes the final status after this
			// middleware returns, so derive the status from the error when
			// one is propagating.
			status := c.Response().Status
			if err != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError
				switch {
				case errors.As(err, &httpErr):
					status = httpErr.Status
				case errors.As(err, &echoErr):
					status = echoErr.Code
				}
			}

			m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
