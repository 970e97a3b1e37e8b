package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"perfumefinder/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits(kind string)
	IncCacheMisses(kind string)
	ObservePersistenceDuration(duration time.Duration)
	IncPersistenceErrors()
	SetFavoritesTotal(count int)
	SetAlertsTotal(count int)
	SetCatalogueItems(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	persistenceDuration prometheus.Histogram
	persistenceErrors   prometheus.Counter
	favoritesTotal      prometheus.Gauge
	alertsTotal         prometheus.Gauge
	catalogueItems      prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits(kind string) {
	m.cacheHits.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) IncCacheMisses(kind string) {
	m.cacheMisses.WithLabelValues(kind).Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncPersistenceErrors() {
	m.persistenceErrors.Inc()
}

func (m *MetricsProvider) SetFavoritesTotal(count int) {
	m.favoritesTotal.Set(float64(count))
}

func (m *MetricsProvider) SetAlertsTotal(count int) {
	m.alertsTotal.Set(float64(count))
}

func (m *MetricsProvider) SetCatalogueItems(count int) {
	m.catalogueItems.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pf_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pf_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pf_cache_hits_total",
			Help: "Total number of response cache hits",
		}, []string{"kind"}),

		cacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pf_cache_misses_total",
			Help: "Total number of response cache misses",
		}, []string{"kind"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pf_persistence_duration_seconds",
			Help:    "Duration of user state writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		persistenceErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pf_persistence_errors_total",
			Help: "Total number of failed user state writes",
		}),

		favoritesTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pf_favorites_total",
			Help: "Number of favorite perfumes",
		}),

		alertsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pf_price_alerts_total",
			Help: "Number of price alerts",
		}),

		catalogueItems: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "pf_catalogue_items",
			Help: "Number of perfumes in the loaded catalogue",
		}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits(_ string)                            {}
func (n *noopMetrics) IncCacheMisses(_ string)                          {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncPersistenceErrors()                            {}
func (n *noopMetrics) SetFavoritesTotal(_ int)                          {}
func (n *noopMetrics) SetAlertsTotal(_ int)                             {}
func (n *noopMetrics) SetCatalogueItems(_ int)                          {}
