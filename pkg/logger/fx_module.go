package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
// It provides the *LoggerClient and the Logger interface, and closes the sinks
// when the application stops.
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
// - A logger.RecordObserver is optional; when present every sink write is reported to it
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClientWithDI,
		func(client *LoggerClient) Logger { return client },
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// LoggerParams groups the dependencies of NewLoggerClientWithDI.
type LoggerParams struct {
	fx.In

	Config   Config
	Observer RecordObserver `optional:"true"`
}

// NewLoggerClientWithDI builds the logger from injected dependencies.
// A construction error aborts the application start.
func NewLoggerClientWithDI(p LoggerParams) (*LoggerClient, error) {
	var opts []Option
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}
	return NewLoggerClient(p.Config, opts...)
}

// RegisterLoggerLifecycle flushes and closes the sinks on shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close() // flushes any buffered logs
		},
	})
}
