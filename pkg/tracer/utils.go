package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/Aleph-Alpha/appkit"

// StartSpan starts a span named name as a child of any span in ctx and returns
// the derived context. Optional attribute maps are set on the new span.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "startup", map[string]interface{}{"env": "production"})
//	defer span.End()
//	log.InfoWithContext(ctx, "ready", nil) // carries trace_id and span_id
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...map[string]interface{}) (context.Context, traceSpan.Span) {
	ctx, span := t.tracer.Tracer(instrumentationName).Start(ctx, name)
	for _, a := range attrs {
		t.SetAttributes(span, a)
	}
	return ctx, span
}

// RecordErrorOnSpan records err on span and marks the span as failed.
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attrs to span. Strings, ints, int64s, float64s and bools
// keep their type; anything else is stored via fmt.Sprint.
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}
	span.SetAttributes(attributes...)
}

// GetCarrier returns the W3C trace-context headers for the span in ctx, for
// example to attach to an outgoing Kafka message or HTTP request.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	propagator().Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the inverse of GetCarrier.
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return propagator().Extract(ctx, propagation.MapCarrier(carrier))
}

func propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}
