package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"lucky_casino/internal/config"
)

const (
	maxSizeMB  = 100
	maxBackups = 5
	maxAgeDays = 30
)

// New собирает zap логгер: stdout и, если задан LOG_FILE, файл с ротацией
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Development() {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(encCfg, cfg.Development()), zapcore.Lock(os.Stdout), level),
	}

	if cfg.File() != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File(),
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		// в файл всегда JSON
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level))
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development() {
		opts = append(opts, zap.Development())
	} else {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func newEncoder(encCfg zapcore.EncoderConfig, dev bool) zapcore.Encoder {
	if dev {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}
