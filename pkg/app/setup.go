package app

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/appkit/pkg/config"
)

// Logger is the part of logger.Logger the composition root writes through.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=app
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// SpanStarter starts the span the startup record is logged in. *tracer.Tracer
// implements it.
type SpanStarter interface {
	StartSpan(ctx context.Context, name string, attrs ...map[string]interface{}) (context.Context, trace.Span)
}

// StartupMessage is the message of the record written once the application
// has been configured.
const StartupMessage = "application configured"

// LogStartup writes a single record describing the configuration snapshot,
// inside a "startup" span. Secrets in the snapshot render as [REDACTED].
func LogStartup(ctx context.Context, cfg config.Config, log Logger, spans SpanStarter) {
	ctx, span := spans.StartSpan(ctx, "startup", map[string]interface{}{
		"app.env":  cfg.App.Env,
		"app.name": cfg.App.Name,
	})
	defer span.End()

	log.InfoWithContext(ctx, StartupMessage, nil, map[string]interface{}{
		"env":  cfg.App.Env,
		"name": cfg.App.Name,
		"config": map[string]interface{}{
			"app":     cfg.App,
			"log":     cfg.Log,
			"metrics": cfg.Metrics,
			"tracing": cfg.Tracing,
		},
	})
}
