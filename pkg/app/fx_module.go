package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/appkit/pkg/config"
	"github.com/Aleph-Alpha/appkit/pkg/logger"
	"github.com/Aleph-Alpha/appkit/pkg/metrics"
	"github.com/Aleph-Alpha/appkit/pkg/tracer"
)

// Module wires configuration, logging, metrics and tracing with the default
// configuration options.
var Module = NewModule()

// NewModule bundles every package module. The configuration is loaded once
// with opts; the logger, the metrics observer and the tracer are shared by all
// consumers. fx's own events go through the service logger.
func NewModule(opts ...config.Option) fx.Option {
	return fx.Options(
		config.Module(opts...),
		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		fx.WithLogger(newEventLogger),
		fx.Invoke(RegisterStartupLog),
	)
}

// newEventLogger routes fx events through the service logger. Routine events
// are logged below info so they are filtered by every threshold.
func newEventLogger(client *logger.LoggerClient) fxevent.Logger {
	l := &fxevent.ZapLogger{Logger: client.Zap}
	l.UseLogLevel(zapcore.DebugLevel)
	return l
}

// RegisterStartupLog writes the startup record when the application starts.
func RegisterStartupLog(lc fx.Lifecycle, cfg config.Config, log logger.Logger, tr *tracer.Tracer) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			LogStartup(ctx, cfg, log, tr)
			return nil
		},
	})
}
