package log

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

func InitProd() *zap.Logger {
	return initLogger(zap.NewProductionConfig())
}

// InitCLI builds a compact colored console logger for interactive use.
func InitCLI() *zap.Logger {
	return initLogger(cliConfig())
}

func cliConfig() zap.Config {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	return config
}

// InitFile additionally writes JSON lines into a size-rotated file.
func InitFile(path string, production bool) *zap.Logger {
	config := cliConfig()
	if production {
		config = zap.NewProductionConfig()
	}

	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		rotated,
		config.Level,
	)

	return initLogger(config, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}

func initLogger(config zap.Config, options ...zap.Option) *zap.Logger {
	var err error
	logger, err = config.Build(append([]zap.Option{zap.AddStacktrace(zap.WarnLevel)}, options...)...)
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
