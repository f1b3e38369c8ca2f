package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config ロガー設定
type Config struct {
	// Level ログレベル debug, info, warn, error (default: info)
	Level string `mapstructure:"level" yaml:"level" json:"level"`
	// Dev 人間向けのコンソール形式で出力するかどうか (default: false)
	Dev bool `mapstructure:"dev" yaml:"dev" json:"dev"`
	// File 出力先ファイル 空の場合は標準出力
	File string `mapstructure:"file" yaml:"file" json:"file"`
	// MaxSizeMB ファイル出力時のローテーションサイズ(MB) (default: 10)
	MaxSizeMB int `mapstructure:"maxSizeMB" yaml:"maxSizeMB" json:"maxSizeMB"`
	// MaxBackups ファイル出力時に残す世代数 (default: 2)
	MaxBackups int `mapstructure:"maxBackups" yaml:"maxBackups" json:"maxBackups"`
}

var logLevelSeverity = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "severity",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    encodeLevel,
	EncodeTime:     rfc3339NanoTimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

var devEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "T",
	LevelKey:       "L",
	NameKey:        "N",
	CallerKey:      "C",
	MessageKey:     "M",
	StacktraceKey:  "S",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(logLevelSeverity[l])
}

func rfc3339NanoTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(time.RFC3339Nano))
}

func (c Config) level() (zap.AtomicLevel, error) {
	if c.Level == "" {
		if c.Dev {
			return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
		}
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	lvl, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return lvl, nil
}

func (c Config) encoder() zapcore.Encoder {
	if c.Dev {
		return zapcore.NewConsoleEncoder(devEncoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}
