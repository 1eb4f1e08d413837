// Package metrics exposes Prometheus metrics for the service.
//
// Every metric is registered on a dedicated registry carrying a constant
// "service" label. The package counts log records per sink and level
// (<namespace>_log_records_total) and failed sink writes
// (<namespace>_log_sink_errors_total) by acting as the logger's
// RecordObserver.
//
// Basic Usage:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	log, err := logger.NewLoggerClient(logCfg, logger.WithObserver(m))
//
// FX Integration:
//
// FXModule provides *Metrics and registers it as the logger.RecordObserver, so
// including both modules wires the counters automatically. The /metrics server
// is started only when METRICS_ENABLED is true.
//
//	app := fx.New(
//		metrics.FXModule,
//		logger.FXModule,
//	)
package metrics
