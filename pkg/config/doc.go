// Package config loads the process configuration snapshot.
//
// Values come from four layers, later ones winning: built-in defaults, an
// optional YAML file, a .env file and the process environment. Every section
// declares its variables with envconfig tags:
//
//	NODE_ENV              production | development | local (default local)
//	APP_NAME              service name (default "Node API")
//	APP_CONFIG_FILE       optional YAML file
//	LOG_LEVEL             info | warn | error | critical (default info)
//	LOG_TRANSPORTS        comma separated sinks (default console,file)
//	LOG_FILE              file sink path (default <install dir>/storage/logs/info.log)
//	LOG_DATADOG_API_KEY   collector credential, never printed
//	LOG_DATADOG_URL       collector intake URL
//	LOG_DATADOG_SOURCE    ddsource attribute (default go)
//	LOG_KAFKA_BROKERS     comma separated brokers for the kafka sink
//	LOG_KAFKA_TOPIC       kafka sink topic (default logs)
//	LOG_ENABLE_TRACING    add trace_id and span_id to context-aware records
//	METRICS_ENABLED       serve /metrics
//	METRICS_ADDRESS       metrics listen address (default :9090)
//	METRICS_NAMESPACE     metric name prefix (default appkit)
//	TRACING_ENABLE_EXPORT export spans over OTLP/HTTP
//
// Validation is strict. Values outside their enumeration, unknown YAML keys
// and variables that start with APP_, LOG_, METRICS_ or TRACING_ without being
// declared all fail with a *ValidationError. Errors name the variable but never
// repeat a secret.
//
// The YAML file mirrors the structure of Config:
//
//	app:
//	  env: production
//	  name: billing-api
//	log:
//	  level: warn
//	  transports: [console, file, datadog]
//	  datadog_api_key: xxxx
//	metrics:
//	  enabled: true
//
// Inside an fx application use FXModule (or Module with options); the snapshot
// is loaded once and its sections are provided to the other modules.
package config
