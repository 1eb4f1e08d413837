package logger

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultCollectorTimeout bounds a single write to the Datadog intake or a Kafka broker.
const DefaultCollectorTimeout = 5 * time.Second

// LoggerClient is a wrapper around Uber's Zap logger.
// It fans records out to the sinks selected by the configuration.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	threshold  Severity
	transports []Transport
	closers    []io.Closer

	// tracingEnabled indicates whether the *WithContext methods add trace/span ids
	tracingEnabled bool
}

type options struct {
	console    zapcore.WriteSyncer
	httpClient *http.Client
	observer   RecordObserver
	hostname   string
}

// Option customizes NewLoggerClient.
type Option func(*options)

// WithConsoleOutput replaces stdout as the console sink destination.
func WithConsoleOutput(w io.Writer) Option {
	return func(o *options) {
		o.console = zapcore.AddSync(w)
	}
}

// WithHTTPClient sets the client used by the Datadog sink.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithObserver reports every written record to observer.
func WithObserver(observer RecordObserver) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// NewLoggerClient builds the logger described by cfg.
//
// In production and development the configured level and transport list are
// used. Any other environment gets a console-only logger at info, regardless
// of level and transports.
//
// The console and file sinks are always opened; Datadog and Kafka sinks only
// when listed. A sink that cannot be constructed fails the whole call with a
// *SinkConstructionError and every sink opened so far is closed again.
//
// Example:
//
//	log, err := logger.NewLoggerClient(logger.Config{
//	    Environment: logger.EnvironmentProduction,
//	    Level:       logger.Warn,
//	    Transports:  []string{"console", "file"},
//	    File:        "/var/log/app/info.log",
//	})
//	if err != nil {
//	    stdlog.Fatal(err)
//	}
//	defer log.Close()
//	log.Warn("disk almost full", nil, map[string]interface{}{"free_mb": 120})
func NewLoggerClient(cfg Config, opts ...Option) (*LoggerClient, error) {
	o := options{
		console:    zapcore.AddSync(consoleWriter{os.Stdout}),
		httpClient: &http.Client{Timeout: DefaultCollectorTimeout},
		hostname:   cfg.Hostname,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hostname == "" {
		o.hostname, _ = os.Hostname()
	}

	threshold := SeverityInfo
	transports := []Transport{TransportConsole}

	switch cfg.Environment {
	case EnvironmentProduction, EnvironmentDevelopment:
		sev, err := ParseSeverity(cfg.Level)
		if err != nil {
			return nil, err
		}
		threshold = sev
		transports = ResolveTransports(cfg.Transports)
	}

	builder := &sinkBuilder{cfg: cfg, opts: o, enabler: threshold.levelEnabler()}
	sinks, err := builder.build(transports)
	if err != nil {
		return nil, err
	}

	cores := make([]zapcore.Core, 0, len(transports))
	for _, t := range transports {
		cores = append(cores, observe(sinks[t].core, t, o.observer))
	}

	closers := make([]io.Closer, 0, len(sinks))
	for _, s := range sinks {
		if s.closer != nil {
			closers = append(closers, s.closer)
		}
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.ErrorOutput(zapcore.Lock(os.Stderr)))

	return &LoggerClient{
		Zap:            logger,
		threshold:      threshold,
		transports:     transports,
		closers:        closers,
		tracingEnabled: cfg.EnableTracing,
	}, nil
}

// Threshold returns the minimum severity that is emitted.
func (l *LoggerClient) Threshold() Severity {
	return l.threshold
}

// Transports returns the resolved sink list, in write order.
func (l *LoggerClient) Transports() []Transport {
	out := make([]Transport, len(l.transports))
	copy(out, l.transports)
	return out
}

// Sync flushes buffered records of every sink.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}

// Close flushes and releases the file handle and collector connections.
func (l *LoggerClient) Close() error {
	errs := []error{l.Sync()}
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("logger: close: %w", err)
	}
	return nil
}
