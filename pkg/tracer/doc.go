// Package tracer provides the OpenTelemetry tracer provider for the service.
//
// Spans started through the Tracer carry the trace and span ids that the
// logger package attaches to records written with the *WithContext methods
// when LOG_ENABLE_TRACING is set.
//
// Basic Usage:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName: "billing-api",
//		AppEnv:      "production",
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer tracerClient.Shutdown(context.Background())
//
//	ctx, span := tracerClient.StartSpan(ctx, "charge")
//	defer span.End()
//	if err := charge(ctx); err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//	}
//
// Export:
//
// With TRACING_ENABLE_EXPORT=true spans are batched to an OTLP HTTP endpoint
// configured through the standard OTEL_EXPORTER_OTLP_ENDPOINT variables.
// Without it spans are still created so log correlation keeps working.
//
// FX Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//	)
package tracer
