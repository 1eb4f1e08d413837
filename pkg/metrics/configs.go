package metrics

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// DefaultNamespace prefixes every metric registered by this package.
const DefaultNamespace = "appkit"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Enabled starts the /metrics HTTP server with the application. The registry
	// and the log counters exist either way.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enabled" key
	//   - Environment variable METRICS_ENABLED
	Enabled bool `yaml:"enabled" envconfig:"METRICS_ENABLED"`

	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"   → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// Default: true
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace sets a global prefix for all metrics registered by this service.
	//
	// Example:
	//   Namespace: "billing"
	//   → Metric name becomes "billing_log_records_total"
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached as the constant "service" label. It is copied from
	// the application name.
	ServiceName string `yaml:"-" ignored:"true"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Address:                 DefaultMetricsAddress,
		EnableDefaultCollectors: true,
		Namespace:               DefaultNamespace,
	}
}
