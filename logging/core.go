package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type driverConfig struct {
	ServiceName    string
	ServiceVersion string
}

// core サービス情報・呼び出し元情報を付与するzapcore.Core
type core struct {
	zapcore.Core
	config driverConfig
}

// With adds structured context to the Core.
func (c *core) With(fields []zap.Field) zapcore.Core {
	return &core{
		Core:   c.Core.With(fields),
		config: c.config,
	}
}

// Check determines whether the supplied Entry should be logged.
func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write serializes the Entry and any Fields supplied at the log site and
// writes them to their destination.
func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	fields = appendIfAbsent(fields, serviceContextKey, func() zap.Field {
		return ServiceContext(c.config.ServiceName, c.config.ServiceVersion)
	})
	if ent.Caller.Defined {
		fields = appendIfAbsent(fields, sourceLocationKey, func() zap.Field {
			return SourceLocation(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true)
		})
		if zapcore.ErrorLevel.Enabled(ent.Level) {
			fields = appendIfAbsent(fields, contextKey, func() zap.Field {
				return ErrorReport(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true)
			})
		}
	}
	return c.Core.Write(ent, fields)
}

// 同じキーのフィールドが既にあれば追加しない
func appendIfAbsent(fields []zapcore.Field, key string, f func() zap.Field) []zapcore.Field {
	for i := range fields {
		if fields[i].Key == key {
			return fields
		}
	}
	return append(fields, f())
}
