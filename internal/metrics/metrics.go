package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the flight ops server
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Store Metrics
	StoreQueriesTotal  prometheus.CounterVec
	StoreQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	FlightsCreatedTotal       prometheus.Counter
	FlightStatusUpdatesTotal  prometheus.CounterVec
	ValidationFailuresTotal   prometheus.CounterVec
	WeatherObservationsSaved  prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "flightdeck_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Store Metrics
		StoreQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_store_queries_total",
				Help: "Total backing-store operations by store and operation",
			},
			[]string{"store", "operation"},
		),
		StoreQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flightdeck_store_query_duration_seconds",
				Help:    "Backing-store operation time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"store", "operation"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_hits_total",
				Help: "Total cache hits by cache key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_cache_misses_total",
				Help: "Total cache misses by cache key prefix",
			},
			[]string{"prefix"},
		),

		// Business Metrics
		FlightsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_flights_created_total",
				Help: "Total flights accepted by the flight store",
			},
		),
		FlightStatusUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_flight_status_updates_total",
				Help: "Total flight status updates by resulting status",
			},
			[]string{"status"},
		),
		ValidationFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flightdeck_validation_failures_total",
				Help: "Total rejected writes by offending reference",
			},
			[]string{"reference"},
		),
		WeatherObservationsSaved: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flightdeck_weather_observations_saved_total",
				Help: "Total weather observations upserted",
			},
		),
	}
}
