package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus registry, the built-in operation metrics and
// the optional HTTP server exposing them.
type Metrics struct {
	// Server serves the registry on /metrics. It is nil when
	// Config.DisableServer is set.
	Server *http.Server

	// Registry is the isolated registry every metric is registered with.
	Registry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	payloadBytes      *prometheus.HistogramVec
}

// payloadBuckets covers ILS payloads from a few hundred bytes up to
// several megabytes.
var payloadBuckets = prometheus.ExponentialBuckets(256, 4, 8)

// NewMetrics creates a dedicated registry whose metrics all carry the
// constant label service="<cfg.ServiceName>", registers the operation
// metrics and, unless disabled, an HTTP server exposing /metrics.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "catalog",
//	})
//	rec, err := record.New(ils.PatronSchema, body, record.WithObserver(m))
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.Namespace,
		registerer: wrapped,
	}

	m.operationsTotal = createCounterVec(cfg.Namespace, "ils_operations_total",
		"Total number of ILS record serializer operations",
		[]string{"component", "operation", "resource", "format", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "ils_operation_duration_seconds",
		"Duration of ILS record serializer operations in seconds",
		[]string{"component", "operation", "resource", "format"}, prometheus.DefBuckets)
	m.payloadBytes = createHistogramVec(cfg.Namespace, "ils_payload_bytes",
		"Size of ILS text payloads in bytes",
		[]string{"operation", "resource", "format"}, payloadBuckets)

	wrapped.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.payloadBytes,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if !cfg.DisableServer {
		addr := cfg.Address
		if addr == "" {
			addr = DefaultMetricsAddress
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    addr,
			Handler: mux,
		}
	}
	return m
}
