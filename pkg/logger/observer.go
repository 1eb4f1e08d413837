package logger

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// RecordObserver is notified about every record a sink writes.
// elapsed is the time the sink spent writing; err is its write error, nil on
// success.
type RecordObserver interface {
	ObserveRecord(sink string, level string, elapsed time.Duration, err error)
}

// observedCore reports writes of the wrapped core to a RecordObserver.
type observedCore struct {
	zapcore.Core
	sink     string
	observer RecordObserver
}

func observe(core zapcore.Core, t Transport, observer RecordObserver) zapcore.Core {
	if observer == nil {
		return core
	}
	return &observedCore{Core: core, sink: t.String(), observer: observer}
}

func (c *observedCore) With(fields []zapcore.Field) zapcore.Core {
	return &observedCore{Core: c.Core.With(fields), sink: c.sink, observer: c.observer}
}

func (c *observedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *observedCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	start := time.Now()
	err := c.Core.Write(ent, fields)
	c.observer.ObserveRecord(c.sink, severityFromZap(ent.Level).String(), time.Since(start), err)
	return err
}
