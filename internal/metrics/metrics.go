package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Farecast
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	SearchesTotal        prometheus.Counter
	OffersGeneratedTotal prometheus.Counter
	SeatMapsTotal        prometheus.Counter
	ForecastsTotal       prometheus.Counter
	AdvisoriesTotal      prometheus.CounterVec
	BookingsTotal        prometheus.CounterVec
	FallbackRoutesTotal  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farecast_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "farecast_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "farecast_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farecast_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farecast_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		SearchesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "farecast_searches_total",
				Help: "Total flight searches served",
			},
		),
		OffersGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "farecast_offers_generated_total",
				Help: "Total synthesized flight offers across all searches",
			},
		),
		SeatMapsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "farecast_seat_maps_total",
				Help: "Total seat maps generated",
			},
		),
		ForecastsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "farecast_fare_forecasts_total",
				Help: "Total 30-day fare calendars computed (cache misses only)",
			},
		),
		AdvisoriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farecast_advisories_total",
				Help: "Total buy/wait advisories by action",
			},
			[]string{"action"},
		),
		BookingsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farecast_bookings_total",
				Help: "Total bookings created by status",
			},
			[]string{"status"},
		),
		FallbackRoutesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "farecast_fallback_routes_total",
				Help: "Searches where origin or destination fell back to the default route",
			},
		),
	}
}
