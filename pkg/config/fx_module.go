package config

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/appkit/pkg/logger"
	"github.com/Aleph-Alpha/appkit/pkg/metrics"
	"github.com/Aleph-Alpha/appkit/pkg/tracer"
)

// FXModule loads the configuration with the default options.
var FXModule = Module()

// Module provides the Config snapshot, loaded once per application, and the
// sections consumed by the logger, metrics and tracer modules.
// A validation error aborts the application start.
func Module(opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(
			func() (Config, error) { return Load(opts...) },
			func(c Config) logger.Config { return c.Log },
			func(c Config) metrics.Config { return c.Metrics },
			func(c Config) tracer.Config { return c.Tracing },
		),
	)
}
