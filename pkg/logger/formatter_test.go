package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestFormatWithoutFields(t *testing.T) {
	rec := Record{Time: fixedTime, Severity: SeverityInfo, Message: "server listening"}

	line, err := Format(rec, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:00:00 [info]: server listening", line)
	assert.NotContains(t, line, "\n")
	assert.NotContains(t, line, "{")
}

func TestFormatAppendsIndentedFields(t *testing.T) {
	rec := Record{
		Time:     fixedTime,
		Severity: SeverityWarn,
		Message:  "slow query",
		Fields:   map[string]interface{}{"table": "users", "ms": 1200},
	}

	line, err := Format(rec, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:00:00 [warn]: slow query\n{\n  \"ms\": 1200,\n  \"table\": \"users\"\n}", line)
}

func TestFormatIsDeterministic(t *testing.T) {
	rec := Record{
		Time:     fixedTime,
		Severity: SeverityError,
		Message:  "boom",
		Fields:   map[string]interface{}{"b": 2, "a": 1, "c": []int{1, 2}},
	}

	first, err := Format(rec, true)
	require.NoError(t, err)
	second, err := Format(rec, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, rec.Fields, 3, "formatting must not mutate the record")
}

func TestFormatStructuredMessage(t *testing.T) {
	rec := Record{
		Time:     fixedTime,
		Severity: SeverityInfo,
		Message:  map[string]interface{}{"event": "signup", "plan": "pro"},
	}

	line, err := Format(rec, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:00:00 [info]: {\n  \"event\": \"signup\",\n  \"plan\": \"pro\"\n}", line)
}

func TestFormatErrorMessage(t *testing.T) {
	line, err := Format(Record{Time: fixedTime, Severity: SeverityError, Message: errors.New("disk full")}, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:00:00 [error]: disk full", line)
}

func TestFormatColors(t *testing.T) {
	rec := Record{Time: fixedTime, Severity: SeverityCritical, Message: "database unreachable"}

	colored, err := Format(rec, true)
	require.NoError(t, err)
	assert.Contains(t, colored, Color(SeverityCritical)+"critical"+ansiReset)

	plain, err := Format(rec, false)
	require.NoError(t, err)
	assert.NotContains(t, plain, "\033[")
	assert.Contains(t, plain, "[critical]")
}

func TestEverySeverityHasAColor(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Severities() {
		c := Color(s)
		require.NotEmpty(t, c, s.String())
		assert.False(t, seen[c], "color of %s reused", s)
		seen[c] = true
	}
}

func TestFormatRejectsUnencodableFields(t *testing.T) {
	_, err := Format(Record{Time: fixedTime, Fields: map[string]interface{}{"ch": make(chan int)}}, false)
	assert.Error(t, err)
}

func TestLineEncoderThroughZap(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(newLineEncoder(false), zapcore.AddSync(&buf), zapcore.InfoLevel)
	log := zap.New(core).With(zap.String("component", "billing"))

	log.Warn("retrying", zap.Int("attempt", 2), zap.Error(errors.New("timeout")))
	log.Info("done")

	lines := buf.String()
	assert.Contains(t, lines, "[warn]: retrying\n{\n  \"attempt\": 2,\n  \"component\": \"billing\",\n  \"error\": \"timeout\"\n}\n")
	assert.Contains(t, lines, "[info]: done\n{\n  \"component\": \"billing\"\n}\n")
}
