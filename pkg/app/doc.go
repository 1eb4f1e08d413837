// Package app is the composition root of the service.
//
// Module bundles the config, logger, metrics and tracer fx modules: the
// configuration snapshot is loaded once, the logger is built from it and
// shared, and a single startup record with the redacted configuration is
// written when the application starts.
//
//	func main() {
//		fx.New(app.Module).Run()
//	}
package app
