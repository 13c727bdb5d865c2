package zap

import (
	"time"

	"github.com/myyapa/discover/pkg/logger/config"

	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger from a validated configuration.
func New(cfg config.Configuration) (*uberzap.Logger, error) {
	zapCfg := uberzap.NewProductionConfig()
	zapCfg.Level = uberzap.NewAtomicLevelAt(zapcore.Level(cfg.Level))
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(cfg.TimeFormat))
	}

	return zapCfg.Build()
}
