package tracer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/appkit/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}

func newTestTracer(t *testing.T) *Tracer {
	t.Helper()
	tr, err := NewClient(Config{ServiceName: "billing", AppEnv: "development"}, nopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr
}

func TestStartSpan(t *testing.T) {
	tr := newTestTracer(t)

	ctx, parent := tr.StartSpan(context.Background(), "parent")
	defer parent.End()
	require.True(t, parent.SpanContext().IsValid())

	_, child := tr.StartSpan(ctx, "child", map[string]interface{}{"attempt": 2})
	defer child.End()

	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.NotEqual(t, parent.SpanContext().SpanID(), child.SpanContext().SpanID())

	ro, ok := child.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	assert.Contains(t, ro.Attributes(), attribute.Int("attempt", 2))
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr := newTestTracer(t)
	_, span := tr.StartSpan(context.Background(), "charge")
	defer span.End()

	tr.RecordErrorOnSpan(span, errors.New("card declined"))

	ro := span.(sdktrace.ReadOnlySpan)
	assert.Equal(t, codes.Error, ro.Status().Code)
	assert.Equal(t, "card declined", ro.Status().Description)
	require.Len(t, ro.Events(), 1)
	assert.Equal(t, "exception", ro.Events()[0].Name)
}

func TestRecordErrorOnSpanNil(t *testing.T) {
	tr := newTestTracer(t)
	_, span := tr.StartSpan(context.Background(), "noop")
	defer span.End()

	tr.RecordErrorOnSpan(span, nil)

	ro := span.(sdktrace.ReadOnlySpan)
	assert.Equal(t, codes.Unset, ro.Status().Code)
	assert.Empty(t, ro.Events())
}

func TestSetAttributes(t *testing.T) {
	tr := newTestTracer(t)
	_, span := tr.StartSpan(context.Background(), "attrs")
	defer span.End()

	tr.SetAttributes(span, map[string]interface{}{
		"s":     "x",
		"i":     1,
		"i64":   int64(2),
		"f":     1.5,
		"b":     true,
		"other": []int{1, 2},
	})

	attrs := span.(sdktrace.ReadOnlySpan).Attributes()
	assert.Contains(t, attrs, attribute.String("s", "x"))
	assert.Contains(t, attrs, attribute.Int("i", 1))
	assert.Contains(t, attrs, attribute.Int64("i64", 2))
	assert.Contains(t, attrs, attribute.Float64("f", 1.5))
	assert.Contains(t, attrs, attribute.Bool("b", true))
	assert.Contains(t, attrs, attribute.String("other", "[1 2]"))
}

func TestCarrierRoundTrip(t *testing.T) {
	tr := newTestTracer(t)
	ctx, span := tr.StartSpan(context.Background(), "publish")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	remote := trace.SpanContextFromContext(tr.SetCarrierOnContext(context.Background(), carrier))
	assert.Equal(t, span.SpanContext().TraceID(), remote.TraceID())
	assert.True(t, remote.IsRemote())
}

func TestShutdownNilProvider(t *testing.T) {
	tr := &Tracer{logger: nopLogger{}}
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestLogRecordsCarrySpanIDs(t *testing.T) {
	tr := newTestTracer(t)

	var out bytes.Buffer
	cfg := logger.DefaultConfig()
	cfg.Environment = logger.EnvironmentDevelopment
	cfg.Transports = []string{"console"}
	cfg.File = t.TempDir() + "/app.log"
	cfg.EnableTracing = true
	log, err := logger.NewLoggerClient(cfg, logger.WithConsoleOutput(&out))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })

	ctx, span := tr.StartSpan(context.Background(), "startup")
	log.InfoWithContext(ctx, "ready", nil)
	span.End()

	assert.Contains(t, out.String(), span.SpanContext().TraceID().String())
	assert.Contains(t, out.String(), span.SpanContext().SpanID().String())
}
