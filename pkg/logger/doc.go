// Package logger builds the process logger from configuration.
//
// The logger is a thin layer over Uber's zap. It knows four severities, ordered
// the RFC5424 way (a lower value is more severe):
//
//	critical = 0, error = 1, warn = 2, info = 3
//
// and a fixed set of sinks ("transports"):
//
//   - console: colored lines on stdout
//   - file: the same lines without color codes, appended to Config.File
//   - datadog: JSON records posted to the Datadog HTTP intake
//   - kafka: JSON records published to a Kafka topic
//
// # Line Format
//
// Console and file sinks write
//
//	2024-05-01 12:00:00 [warn]: cache miss ratio high
//	{
//	  "ratio": 0.42
//	}
//
// The JSON block only appears when the record has fields. A message that is not
// a string (see LoggerClient.Log) is rendered as indented JSON itself.
//
// # Sink Selection
//
// Only the production and development environments read Level and Transports.
// Every other environment (local by default) logs to the console at info.
//
// Transport names are resolved one by one: an unknown name becomes a console
// sink, a repeated name becomes a repeated sink, and "both" means console
// followed by file.
//
// # Usage
//
//	log, err := logger.NewLoggerClient(logger.Config{
//		Environment: logger.EnvironmentProduction,
//		ServiceName: "billing",
//		Level:       logger.Info,
//		Transports:  []string{"console", "datadog"},
//		DatadogAPIKey: redact.Secret(os.Getenv("LOG_DATADOG_API_KEY")),
//		DatadogURL:    logger.DefaultDatadogURL,
//	})
//	if err != nil {
//		stdlog.Fatal(err)
//	}
//	defer log.Close()
//
//	log.Info("invoice sent", nil, map[string]interface{}{"invoice_id": "inv_42"})
//	log.ErrorWithContext(ctx, "charge failed", err, nil)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return cfg }),
//	)
//
// # Thread Safety
//
// All methods on LoggerClient are safe for concurrent use. Writes are
// serialized per sink; records are not ordered across sinks.
package logger
