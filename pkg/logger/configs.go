package logger

import (
	"os"
	"path/filepath"

	"github.com/Aleph-Alpha/appkit/pkg/redact"
)

// Level names accepted in configuration. They match the severity table
// returned by Severities.
const (
	Critical = "critical"
	Error    = "error"
	Warn     = "warn"
	Info     = "info"
)

// Application environments. Only production and development honor the configured
// level and transports; every other environment logs to the console at info.
const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
	EnvironmentLocal       = "local"
)

const (
	// DefaultFile is relative to the directory holding the executable.
	DefaultFile = "storage/logs/info.log"

	DefaultDatadogURL    = "https://http-intake.logs.datadoghq.com/api/v2/logs"
	DefaultDatadogSource = "go"
	DefaultKafkaTopic    = "logs"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Environment is copied from the application section of the configuration.
	// It is not read from its own variable.
	Environment string `yaml:"-" ignored:"true"`

	// ServiceName tags collector records with the application name.
	ServiceName string `yaml:"-" ignored:"true"`

	// Hostname overrides os.Hostname for collector records. Mostly useful in tests.
	Hostname string `yaml:"-" ignored:"true"`

	// Level is the minimum severity emitted in production and development:
	// "info", "warn", "error" or "critical".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOG_LEVEL
	Level string `yaml:"level" envconfig:"LOG_LEVEL" validate:"oneof=info warn error critical"`

	// Transports lists the sinks to write to, in order. Names are "console",
	// "file", "datadog" (alias "external-collector") and "kafka"; "both" expands to
	// console and file. Unknown names fall back to a console sink each.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "transports" key
	//   - Environment variable LOG_TRANSPORTS (comma separated)
	Transports []string `yaml:"transports" envconfig:"LOG_TRANSPORTS"`

	// File is the destination of the file sink.
	File string `yaml:"file" envconfig:"LOG_FILE"`

	// DatadogAPIKey authenticates against the log intake. Never printed.
	DatadogAPIKey redact.Secret `yaml:"datadog_api_key" envconfig:"LOG_DATADOG_API_KEY"`

	// DatadogURL is the HTTP intake endpoint.
	DatadogURL string `yaml:"datadog_url" envconfig:"LOG_DATADOG_URL" validate:"omitempty,url"`

	// DatadogSource is sent as the ddsource attribute.
	DatadogSource string `yaml:"datadog_source" envconfig:"LOG_DATADOG_SOURCE"`

	// KafkaBrokers is the bootstrap broker list for the kafka sink.
	KafkaBrokers []string `yaml:"kafka_brokers" envconfig:"LOG_KAFKA_BROKERS"`

	// KafkaTopic receives one message per log record.
	KafkaTopic string `yaml:"kafka_topic" envconfig:"LOG_KAFKA_TOPIC"`

	// EnableTracing adds trace_id and span_id to records logged through the
	// *WithContext methods when the context carries a valid span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOG_ENABLE_TRACING"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Environment:   EnvironmentLocal,
		Level:         Info,
		Transports:    []string{"console", "file"},
		File:          DefaultFilePath(),
		DatadogAPIKey: "secret",
		DatadogURL:    DefaultDatadogURL,
		DatadogSource: DefaultDatadogSource,
		KafkaTopic:    DefaultKafkaTopic,
	}
}

// DefaultFilePath resolves DefaultFile against the installation directory, the
// directory of the running executable. When that cannot be determined the
// relative DefaultFile is returned.
func DefaultFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFile
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultFile)
}
