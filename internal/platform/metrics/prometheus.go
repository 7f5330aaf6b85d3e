package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// Manager holds the service's Prometheus metrics on a private registry.
type Manager struct {
	Registry *prometheus.Registry

	ListingsCreatedTotal *prometheus.CounterVec
	ListingsDeletedTotal prometheus.Counter
	SearchesTotal        *prometheus.CounterVec
	ComparisonsTotal     prometheus.Counter
	SuggestionHitsTotal  *prometheus.CounterVec
	HTTPErrorsTotal      *prometheus.CounterVec
	HTTPLatency          *prometheus.HistogramVec
}

func NewManager(serviceName string) *Manager {
	registry := prometheus.NewRegistry()

	listingsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "listings_created_total",
		Help:      "Total number of listings created, by listing type.",
	}, []string{"listing_type"})

	listingsDeleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "listings_deleted_total",
		Help:      "Total number of listings deleted.",
	})

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "searches_total",
		Help:      "Total number of search requests, by kind (filter, advanced, nearby, saved).",
	}, []string{"kind"})

	comparisons := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "comparisons_total",
		Help:      "Total number of comparison requests.",
	})

	suggestionHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "suggestion_lookups_total",
		Help:      "Total number of autocomplete lookups, by outcome.",
	}, []string{"outcome"})

	httpErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "http_errors_total",
		Help:      "Total number of HTTP error responses, by route and status.",
	}, []string{"route", "status"})

	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "http_request_latency_seconds",
		Help:      "Latency of HTTP requests, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	registry.MustRegister(
		listingsCreated,
		listingsDeleted,
		searches,
		comparisons,
		suggestionHits,
		httpErrors,
		httpLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &Manager{
		Registry:             registry,
		ListingsCreatedTotal: listingsCreated,
		ListingsDeletedTotal: listingsDeleted,
		SearchesTotal:        searches,
		ComparisonsTotal:     comparisons,
		SuggestionHitsTotal:  suggestionHits,
		HTTPErrorsTotal:      httpErrors,
		HTTPLatency:          httpLatency,
	}
}

// StartServer exposes the registry on its own port. It blocks, so callers
// run it in a goroutine. An empty port disables the server.
func StartServer(port string, appLogger logger.Logger, registry *prometheus.Registry) error {
	if port == "" {
		appLogger.Info("metrics server port not configured, server will not start")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	appLogger.Infof("metrics server starting on :%s", port)
	server := &http.Server{Addr: ":" + port, Handler: mux}
	return server.ListenAndServe()
}
