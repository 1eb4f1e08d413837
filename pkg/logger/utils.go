package logger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// If multiple fields maps contain the same key, the later maps will override earlier ones.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// traceFields extracts trace_id and span_id from ctx when tracing is enabled
// and ctx carries a valid span.
func (l *LoggerClient) traceFields(ctx context.Context) []zap.Field {
	if !l.tracingEnabled || ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	}
}

// write renders msg into the entry message, so every sink sees the same text
// and caller fields never share a slot with it.
func (l *LoggerClient) write(sev Severity, msg interface{}, zapFields []zap.Field) {
	ce := l.Zap.Check(sev.zapLevel(), "")
	if ce == nil {
		return
	}
	text, err := renderMessage(msg)
	if err != nil {
		text = fmt.Sprint(msg)
		zapFields = append(zapFields, zap.NamedError("message_error", err))
	}
	ce.Message = text
	ce.Write(zapFields...)
}

// Log emits a record at an explicit severity. Unlike the level methods the
// message may be any value; non-string messages are rendered as indented JSON,
// which collectors receive as the "message" string.
//
// Example:
//
//	logger.Log(logger.SeverityWarn, map[string]interface{}{"queue": "mail", "depth": 4200}, nil)
func (l *LoggerClient) Log(sev Severity, msg interface{}, err error, fields ...map[string]interface{}) {
	l.write(sev, msg, l.convertToZapFields(err, fields...))
}

// Critical logs a record at the most severe level. It never terminates the process.
func (l *LoggerClient) Critical(msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityCritical, msg, l.convertToZapFields(err, fields...))
}

// Error logs an error message, including details of the error and additional context fields.
//
// Example:
//
//	err := database.Connect()
//	if err != nil {
//	    logger.Error("Failed to connect to database", err, map[string]interface{}{
//	        "retry_count": 3,
//	        "database": "users",
//	    })
//	}
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityError, msg, l.convertToZapFields(err, fields...))
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityWarn, msg, l.convertToZapFields(err, fields...))
}

// Info logs an informational message, along with an optional error and structured fields.
//
// Example:
//
//	logger.Info("User logged in successfully", nil, map[string]interface{}{
//	    "user_id": 12345,
//	    "login_method": "oauth",
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityInfo, msg, l.convertToZapFields(err, fields...))
}

// CriticalWithContext is Critical plus trace correlation fields from ctx.
func (l *LoggerClient) CriticalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityCritical, msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...))
}

// ErrorWithContext is Error plus trace correlation fields from ctx.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityError, msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...))
}

// WarnWithContext is Warn plus trace correlation fields from ctx.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityWarn, msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...))
}

// InfoWithContext is Info plus trace correlation fields from ctx.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.write(SeverityInfo, msg, append(l.convertToZapFields(err, fields...), l.traceFields(ctx)...))
}
