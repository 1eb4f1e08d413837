package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/appkit/pkg/logger"
)

// FXModule provides the *Tracer and shuts the provider down on stop.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// NewClientWithDI adapts NewClient to the logger provided by the logger module.
func NewClientWithDI(cfg Config, log logger.Logger) (*Tracer, error) {
	return NewClient(cfg, log)
}

func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			tracer.logger.Info("shutting down tracer...", nil, nil)
			return tracer.Shutdown(ctx)
		},
	})
}
