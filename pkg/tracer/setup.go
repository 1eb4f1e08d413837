package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Logger is the subset of logger.Logger the tracer reports through.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Tracer wraps the OpenTelemetry TracerProvider. Spans it starts carry the
// trace and span ids that the logger attaches to context-aware records.
//
// The Tracer is safe for concurrent use.
type Tracer struct {
	tracer *trace.TracerProvider
	logger Logger
}

// NewClient creates the tracer provider, registers it globally together with
// the W3C trace-context propagator and, when export is enabled, attaches an
// OTLP HTTP exporter.
//
// Example:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName:  "billing-api",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//	if err != nil {
//	    return err
//	}
//
//	ctx, span := tracerClient.StartSpan(context.Background(), "process-request")
//	defer span.End()
func NewClient(cfg Config, logger Logger) (*Tracer, error) {
	var options []trace.TracerProviderOption

	if cfg.EnableExport {
		client := otlptracehttp.NewClient()
		exporter, err := otlptrace.New(context.Background(), client)
		if err != nil {
			return nil, fmt.Errorf("cannot initiate trace exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	tp := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return &Tracer{tracer: tp, logger: logger}, nil
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.tracer == nil {
		t.logger.Warn("tracer was nil during shutdown", nil, nil)
		return nil
	}
	return t.tracer.Shutdown(ctx)
}
