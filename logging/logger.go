package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// CreateNewLogger ロガーを生成します
func CreateNewLogger(serviceName, serviceVersion string, c Config) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}

	var out zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	if c.File != "" {
		out = zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    valueOr(c.MaxSizeMB, 10),
			MaxBackups: valueOr(c.MaxBackups, 2),
			Compress:   true,
		})
	}

	base := zapcore.NewCore(c.encoder(), out, lvl)
	opts := []zap.Option{zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if c.Dev {
		return zap.New(base, append(opts, zap.Development())...), nil
	}
	return zap.New(&core{
		Core:   base,
		config: driverConfig{ServiceName: serviceName, ServiceVersion: serviceVersion},
	}, opts...), nil
}

func valueOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
