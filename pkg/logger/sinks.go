package logger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aleph-Alpha/appkit/pkg/redact"
)

// sink is a constructed destination. core already carries the level filter.
type sink struct {
	transport Transport
	core      zapcore.Core
	closer    io.Closer
}

// sinkBuilder constructs the console and file sinks unconditionally and the
// collector sinks only when the resolved transport list asks for them.
type sinkBuilder struct {
	cfg     Config
	opts    options
	enabler zapcore.LevelEnabler
}

func (b *sinkBuilder) build(transports []Transport) (map[Transport]*sink, error) {
	sinks := map[Transport]*sink{
		TransportConsole: b.console(),
	}

	file, err := b.file()
	if err != nil {
		return nil, err
	}
	sinks[TransportFile] = file

	for _, t := range transports {
		if _, ok := sinks[t]; ok {
			continue
		}

		var s *sink
		switch t {
		case TransportDatadog:
			s, err = b.datadog()
		case TransportKafka:
			s, err = b.kafka()
		default:
			err = newSinkError(t, fmt.Errorf("no constructor for transport %d", int(t)))
		}
		if err != nil {
			_ = closeSinks(sinks)
			return nil, err
		}
		sinks[t] = s
	}

	return sinks, nil
}

func closeSinks(sinks map[Transport]*sink) error {
	var errs []error
	for _, s := range sinks {
		if s.closer != nil {
			errs = append(errs, s.closer.Close())
		}
	}
	return errors.Join(errs...)
}

func (b *sinkBuilder) console() *sink {
	return &sink{
		transport: TransportConsole,
		core:      zapcore.NewCore(newLineEncoder(true), zapcore.Lock(b.opts.console), b.enabler),
	}
}

func (b *sinkBuilder) file() (*sink, error) {
	if b.cfg.File == "" {
		return nil, newSinkError(TransportFile, errors.New("empty file path"))
	}
	if err := os.MkdirAll(filepath.Dir(b.cfg.File), 0o755); err != nil {
		return nil, newSinkError(TransportFile, err)
	}
	f, err := os.OpenFile(b.cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, newSinkError(TransportFile, err)
	}

	return &sink{
		transport: TransportFile,
		core:      zapcore.NewCore(newLineEncoder(false), zapcore.Lock(f), b.enabler),
		closer:    f,
	}, nil
}

// collectorFields tag every record shipped off the host.
func (b *sinkBuilder) collectorFields() []zap.Field {
	return []zap.Field{
		zap.String("service", b.cfg.ServiceName),
		zap.String("hostname", b.opts.hostname),
		zap.String("env", b.cfg.Environment),
	}
}

func (b *sinkBuilder) datadog() (*sink, error) {
	if b.cfg.DatadogAPIKey.IsZero() {
		return nil, newSinkError(TransportDatadog, errors.New("empty api key"))
	}
	u, err := url.Parse(b.cfg.DatadogURL)
	if err != nil {
		return nil, newSinkError(TransportDatadog, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, newSinkError(TransportDatadog, fmt.Errorf("invalid intake url %q", b.cfg.DatadogURL))
	}

	w := &datadogWriter{
		client: b.opts.httpClient,
		url:    u.String(),
		apiKey: b.cfg.DatadogAPIKey,
	}
	fields := append(b.collectorFields(),
		zap.String("ddsource", b.cfg.DatadogSource),
		zap.String("ddtags", "env:"+b.cfg.Environment),
	)

	return &sink{
		transport: TransportDatadog,
		core:      zapcore.NewCore(newCollectorEncoder(), zapcore.AddSync(w), b.enabler).With(fields),
	}, nil
}

func (b *sinkBuilder) kafka() (*sink, error) {
	var brokers []string
	for _, broker := range b.cfg.KafkaBrokers {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	if len(brokers) == 0 {
		return nil, newSinkError(TransportKafka, errors.New("no brokers configured"))
	}
	if b.cfg.KafkaTopic == "" {
		return nil, newSinkError(TransportKafka, errors.New("empty topic"))
	}

	w := &kafkaWriter{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  b.cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			RequiredAcks:           kafka.RequireOne,
			BatchSize:              1,
			MaxAttempts:            1,
			WriteTimeout:           DefaultCollectorTimeout,
			AllowAutoTopicCreation: true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				log.Printf("KAFKA ERROR: "+msg, args...)
			}),
		},
		key: []byte(b.cfg.ServiceName),
	}

	return &sink{
		transport: TransportKafka,
		core:      zapcore.NewCore(newCollectorEncoder(), zapcore.AddSync(w), b.enabler).With(b.collectorFields()),
		closer:    w,
	}, nil
}

// datadogWriter posts each encoded record to the HTTP intake. There is no
// batching and no retry; a failed post surfaces as a write error.
type datadogWriter struct {
	client *http.Client
	url    string
	apiKey redact.Secret
}

func (w *datadogWriter) Write(p []byte) (int, error) {
	req, err := http.NewRequest(http.MethodPost, w.url, bytes.NewReader(p))
	if err != nil {
		return 0, fmt.Errorf("datadog: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("DD-API-KEY", w.apiKey.Value())

	resp, err := w.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("datadog: post log record: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("datadog: intake responded %s", resp.Status)
	}
	return len(p), nil
}

func (w *datadogWriter) Sync() error { return nil }

// kafkaWriter publishes one message per record.
type kafkaWriter struct {
	writer *kafka.Writer
	key    []byte
}

func (w *kafkaWriter) Write(p []byte) (int, error) {
	// zap reuses p once Write returns
	value := make([]byte, len(p))
	copy(value, p)

	msg := kafka.Message{Key: w.key, Value: bytes.TrimRight(value, "\n")}
	if err := w.writer.WriteMessages(context.Background(), msg); err != nil {
		return 0, fmt.Errorf("kafka: write log record: %w", err)
	}
	return len(p), nil
}

func (w *kafkaWriter) Sync() error { return nil }

func (w *kafkaWriter) Close() error {
	return w.writer.Close()
}

// consoleWriter hides the *os.File Sync method: fsync on a terminal or pipe
// fails with EINVAL.
type consoleWriter struct {
	io.Writer
}
