// Package metrics exposes Prometheus instrumentation for the HTTP API and the
// ranking pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	latency         *prometheus.HistogramVec
	rankings        *prometheus.CounterVec
	recommendations prometheus.Gauge
	imports         *prometheus.CounterVec
}

// New registers the collectors on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greengreen",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "greengreen",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		rankings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greengreen",
			Name:      "rankings_total",
			Help:      "Profitability rankings computed, by whether a complete profile was used.",
		}, []string{"profile"}),
		recommendations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "greengreen",
			Name:      "plant_this_week_recommendations",
			Help:      "Crops recommended for planting in the last computed week.",
		}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "greengreen",
			Name:      "price_import_rows_total",
			Help:      "Imported market price rows by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.requests, m.latency, m.rankings, m.recommendations, m.imports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency keyed by the matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.latency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Ranked counts one ranking. A nil receiver is a no-op so callers can run
// without metrics.
func (m *Metrics) Ranked(withProfile bool) {
	if m == nil {
		return
	}
	m.rankings.WithLabelValues(strconv.FormatBool(withProfile)).Inc()
}

func (m *Metrics) Recommended(n int) {
	if m == nil {
		return
	}
	m.recommendations.Set(float64(n))
}

// Imported counts price import rows; outcome is "accepted" or "skipped".
func (m *Metrics) Imported(outcome string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.imports.WithLabelValues(outcome).Add(float64(n))
}
