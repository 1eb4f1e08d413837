package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/appkit/pkg/config"
	"github.com/Aleph-Alpha/appkit/pkg/logger"
	"github.com/Aleph-Alpha/appkit/pkg/tracer"
)

const apiKey = "dd-0a1b2c3d4e5f"

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		for _, p := range config.ReservedPrefixes {
			if strings.HasPrefix(name, p) {
				t.Setenv(name, "")
				require.NoError(t, os.Unsetenv(name))
			}
		}
	}
	t.Setenv("NODE_ENV", "")
	require.NoError(t, os.Unsetenv("NODE_ENV"))
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.App.Env = "production"
	cfg.App.Name = "billing"
	cfg.Log.DatadogAPIKey = apiKey
	return cfg
}

func TestLogStartupRedactsSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLog := NewMockLogger(ctrl)

	tr, err := tracer.NewClient(tracer.Config{ServiceName: "billing"}, nopLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })

	mockLog.EXPECT().
		InfoWithContext(gomock.Any(), StartupMessage, gomock.Nil(), gomock.Any()).
		Do(func(ctx context.Context, _ string, _ error, fields ...map[string]interface{}) {
			assert.True(t, trace.SpanContextFromContext(ctx).IsValid(), "record is logged inside the startup span")

			require.Len(t, fields, 1)
			assert.Equal(t, "production", fields[0]["env"])
			assert.Equal(t, "billing", fields[0]["name"])

			out, err := json.Marshal(fields[0])
			require.NoError(t, err)
			assert.NotContains(t, string(out), apiKey)
			assert.Contains(t, string(out), "[REDACTED]")
		}).
		Times(1)

	LogStartup(context.Background(), testConfig(), mockLog, tr)
}

type ctxKey struct{}

func TestLogStartupUsesStartupSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLog := NewMockLogger(ctrl)
	mockSpans := NewMockSpanStarter(ctrl)

	spanCtx := context.WithValue(context.Background(), ctxKey{}, "startup")
	gomock.InOrder(
		mockSpans.EXPECT().
			StartSpan(gomock.Any(), "startup", gomock.Any()).
			Return(spanCtx, noop.Span{}),
		mockLog.EXPECT().
			InfoWithContext(spanCtx, StartupMessage, gomock.Nil(), gomock.Any()),
	)

	LogStartup(context.Background(), testConfig(), mockLog, mockSpans)
}

func TestModuleLifecycle(t *testing.T) {
	clearEnv(t)
	logFile := filepath.Join(t.TempDir(), "logs", "app.log")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("APP_NAME", "billing")
	t.Setenv("LOG_TRANSPORTS", "file")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("LOG_DATADOG_API_KEY", apiKey)
	t.Setenv("LOG_ENABLE_TRACING", "true")

	var client *logger.LoggerClient
	app := fxtest.New(t,
		NewModule(config.WithDotEnvFile("")),
		fx.Populate(&client),
	)
	app.RequireStart()

	assert.Equal(t, []logger.Transport{logger.TransportFile}, client.Transports())
	assert.Equal(t, logger.SeverityInfo, client.Threshold())

	app.RequireStop()

	raw, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(raw)

	assert.Equal(t, 1, strings.Count(content, StartupMessage))
	assert.Contains(t, content, "[info]: "+StartupMessage)
	assert.Contains(t, content, `"trace_id"`)
	assert.Contains(t, content, "[REDACTED]")
	assert.NotContains(t, content, apiKey)
	assert.NotContains(t, content, "\033[")
}

func TestModuleAbortsOnInvalidConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", "staging")

	app := fx.New(NewModule(config.WithDotEnvFile("")), fx.NopLogger)
	err := app.Err()
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
}

func TestModuleAbortsOnSinkFailure(t *testing.T) {
	clearEnv(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	t.Setenv("NODE_ENV", "development")
	t.Setenv("LOG_FILE", filepath.Join(blocker, "app.log"))

	app := fx.New(NewModule(config.WithDotEnvFile("")), fx.NopLogger)
	err := app.Err()
	require.Error(t, err)
	assert.True(t, logger.IsSinkConstructionError(err))
}
