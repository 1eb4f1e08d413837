package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aleph-Alpha/appkit/pkg/logger"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
//
// It implements logger.RecordObserver, so handing it to the logger counts every
// record per sink and level.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	Registry *prometheus.Registry

	enabled bool

	logRecords    *prometheus.CounterVec
	sinkErrors    *prometheus.CounterVec
	writeDuration *prometheus.HistogramVec
}

var _ logger.RecordObserver = (*Metrics)(nil)

// NewMetrics initializes a dedicated registry with the log counters, wraps it
// with a constant `service` label and prepares the /metrics server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    Namespace:   "billing",
//	    ServiceName: "billing-api",
//	})
//	log, err := logger.NewLoggerClient(logCfg, logger.WithObserver(m))
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
		enabled:  cfg.Enabled,
	}

	m.logRecords = createCounterVec(cfg.Namespace, "log_records_total", "Log records written, by sink and level", []string{"sink", "level"})
	m.sinkErrors = createCounterVec(cfg.Namespace, "log_sink_errors_total", "Log records a sink failed to write", []string{"sink"})
	m.writeDuration = createHistogramVec(cfg.Namespace, "log_sink_write_duration_seconds", "Time a sink spent writing one record", []string{"sink"}, prometheus.DefBuckets)

	wrappedRegistry.MustRegister(
		m.logRecords,
		m.sinkErrors,
		m.writeDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}

// ObserveRecord counts a record written by sink and its write latency.
// Failed writes are counted separately.
func (m *Metrics) ObserveRecord(sink string, level string, elapsed time.Duration, err error) {
	m.writeDuration.WithLabelValues(sink).Observe(elapsed.Seconds())
	if err != nil {
		m.sinkErrors.WithLabelValues(sink).Inc()
		return
	}
	m.logRecords.WithLabelValues(sink, level).Inc()
}
