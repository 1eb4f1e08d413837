package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// TimestampLayout is the time format of console and file lines.
const TimestampLayout = "2006-01-02 15:04:05"

const ansiReset = "\033[0m"

var severityColors = map[Severity]string{
	SeverityCritical: "\033[1;37;41m", // bold white on red
	SeverityError:    "\033[1;31m",    // bold red
	SeverityWarn:     "\033[1;33m",    // bold yellow
	SeverityInfo:     "\033[1;36m",    // bold cyan
}

var bufferPool = buffer.NewPool()

// Color returns the ANSI sequence console output uses for the level token.
func Color(s Severity) string {
	return severityColors[s]
}

// Record is one log event as seen by Format.
type Record struct {
	Time     time.Time
	Severity Severity
	// Message is usually a string. Anything else is rendered as indented JSON.
	Message interface{}
	// Fields holds the structured context of the record. Empty means no JSON block.
	Fields map[string]interface{}
}

// Format renders a record as
//
//	2006-01-02 15:04:05 [level]: message
//	{
//	  "extra": "fields"
//	}
//
// The JSON block is only present when the record has fields. With colorize the
// level token is wrapped in its ANSI color.
func Format(rec Record, colorize bool) (string, error) {
	level := rec.Severity.String()
	if colorize {
		level = Color(rec.Severity) + level + ansiReset
	}

	message, err := renderMessage(rec.Message)
	if err != nil {
		return "", err
	}

	if len(rec.Fields) > 0 {
		meta, err := indentJSON(rec.Fields)
		if err != nil {
			return "", fmt.Errorf("logger: encode fields: %w", err)
		}
		message += "\n" + meta
	}

	return fmt.Sprintf("%s [%s]: %s", rec.Time.Format(TimestampLayout), level, message), nil
}

func renderMessage(msg interface{}) (string, error) {
	switch m := msg.(type) {
	case nil:
		return "", nil
	case string:
		return m, nil
	case error:
		return m.Error(), nil
	default:
		out, err := indentJSON(m)
		if err != nil {
			return "", fmt.Errorf("logger: encode message: %w", err)
		}
		return out, nil
	}
}

// indentJSON marshals with two-space indentation. Map keys come out sorted, so
// equal input always gives equal output.
func indentJSON(v interface{}) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(b.Bytes(), "\n")), nil
}

// lineEncoder is a zapcore.Encoder producing Format lines. Fields are collected
// with zap's map encoder so every zap.Field type is supported.
type lineEncoder struct {
	*zapcore.MapObjectEncoder
	colorize bool
}

func newLineEncoder(colorize bool) zapcore.Encoder {
	return &lineEncoder{
		MapObjectEncoder: zapcore.NewMapObjectEncoder(),
		colorize:         colorize,
	}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return e.clone()
}

func (e *lineEncoder) clone() *lineEncoder {
	fields := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		fields.Fields[k] = v
	}
	return &lineEncoder{MapObjectEncoder: fields, colorize: e.colorize}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	enc := e.clone()
	for _, f := range fields {
		f.AddTo(enc.MapObjectEncoder)
	}

	rec := Record{
		Time:     ent.Time,
		Severity: severityFromZap(ent.Level),
		Message:  ent.Message,
		Fields:   enc.Fields,
	}
	line, err := Format(rec, e.colorize)
	if err != nil {
		return nil, err
	}

	buf := bufferPool.Get()
	buf.AppendString(line)
	buf.AppendByte('\n')
	return buf, nil
}

// newCollectorEncoder is the JSON layout shipped to external collectors.
func newCollectorEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "status",
		MessageKey:     "message",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeSeverityName,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	})
}

func encodeSeverityName(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(severityFromZap(l).String())
}
