// Package logging builds the structured stderr logger shared by the CLI and
// the shell loop.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	timeKey    = "time"

	encJSON = "json"
)

// Config mirrors config.Log plus a switch for tests.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Encoding is "console" or "json".
	Encoding string
	// Disable yields a no-op logger.
	Disable bool
}

// New returns a sugared logger writing to w.
func New(cfg Config, w io.Writer) (*zap.SugaredLogger, error) {
	if cfg.Disable {
		return zap.NewNop().Sugar(), nil
	}
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	encCfg := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		TimeKey:        timeKey,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	var enc zapcore.Encoder
	if cfg.Encoding == encJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Named("demo").Sugar(), nil
}
