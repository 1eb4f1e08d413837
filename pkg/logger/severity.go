package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Severity follows the RFC5424 ordering: a lower value is more severe.
type Severity int

const (
	SeverityCritical Severity = iota
	SeverityError
	SeverityWarn
	SeverityInfo
)

var severityNames = [...]string{
	SeverityCritical: Critical,
	SeverityError:    Error,
	SeverityWarn:     Warn,
	SeverityInfo:     Info,
}

// Severities returns the severity table, most severe first.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityError, SeverityWarn, SeverityInfo}
}

func (s Severity) String() string {
	if s < SeverityCritical || s > SeverityInfo {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity maps a level name to its severity.
func ParseSeverity(name string) (Severity, error) {
	for _, s := range Severities() {
		if severityNames[s] == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("logger: unknown level %q", name)
}

// Allows reports whether a record of severity rec passes threshold s.
func (s Severity) Allows(rec Severity) bool {
	return rec <= s
}

// zapLevel maps onto zap's levels. Critical uses DPanic, which only panics in
// development mode; loggers built here never enable it.
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case SeverityCritical:
		return zapcore.DPanicLevel
	case SeverityError:
		return zapcore.ErrorLevel
	case SeverityWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func severityFromZap(l zapcore.Level) Severity {
	switch {
	case l >= zapcore.DPanicLevel:
		return SeverityCritical
	case l == zapcore.ErrorLevel:
		return SeverityError
	case l == zapcore.WarnLevel:
		return SeverityWarn
	default:
		return SeverityInfo
	}
}

func (s Severity) levelEnabler() zapcore.LevelEnabler {
	floor := s.zapLevel()
	return zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= floor
	})
}
