package tracer

// Config defines the configuration for the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	// It is copied from the application name.
	ServiceName string `yaml:"-" ignored:"true"`

	// AppEnv is recorded as the deployment.environment resource attribute.
	AppEnv string `yaml:"-" ignored:"true"`

	// EnableExport installs an OTLP HTTP exporter. The endpoint is taken from the
	// standard OTEL_EXPORTER_OTLP_* variables.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_export" key
	//   - Environment variable TRACING_ENABLE_EXPORT
	EnableExport bool `yaml:"enable_export" envconfig:"TRACING_ENABLE_EXPORT"`
}
