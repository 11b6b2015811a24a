// Package logger builds the zap logger of the search node
package logger

import (
	"os"
	"path/filepath"

	"github.com/UnendingLoop/minigrep/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger writing to stdout and a rotated file for env "prod",
// and a console development logger otherwise.
func New(nc *model.NodeConfig) (*zap.Logger, error) {
	switch nc.Env {
	case "prod":
		if err := os.MkdirAll(filepath.Dir(nc.Log.File), 0o755); err != nil {
			return nil, err
		}

		rotated := &lumberjack.Logger{
			Filename:   nc.Log.File,
			MaxSize:    nc.Log.MaxSize,
			MaxBackups: nc.Log.MaxBackups,
			MaxAge:     nc.Log.MaxAge,
			Compress:   nc.Log.Compress,
		}

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.NewMultiWriteSyncer(zapcore.AddSync(rotated), zapcore.Lock(os.Stdout)),
			zap.InfoLevel,
		)

		return zap.New(core), nil

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		return zapCfg.Build()
	}
}
