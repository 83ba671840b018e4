package logger

import (
	"docplanner-gateway/internal/app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envDevelopment = "development"
	envProduction  = "production"

	encodingJSON    = "json"
	encodingConsole = "console"
)

// NewZapLogger builds the process logger. Development logs go to the
// terminal in console form unless an encoding is configured. Production
// logs are sampled JSON written to the configured files.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*zap.Logger, error) {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	env := internalConfig.App.Env
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Development:      env == envDevelopment,
		Encoding:         encodingFor(env, driverConfig.Logger.Encoding),
		EncoderConfig:    encoderConfigFor(env),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	if env == envProduction {
		if driverConfig.Logger.OutputFileName != "" {
			cfg.OutputPaths = []string{driverConfig.Logger.OutputFileName}
		}
		if driverConfig.Logger.OutputErrorFileName != "" {
			cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, driverConfig.Logger.OutputErrorFileName)
		}
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	return cfg.Build(zap.Fields(
		zap.String("service", "docplanner-gateway"),
		zap.String("env", env),
	))
}

func encodingFor(env, configured string) string {
	if configured != "" {
		return configured
	}
	if env == envDevelopment {
		return encodingConsole
	}
	return encodingJSON
}

func encoderConfigFor(env string) zapcore.EncoderConfig {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if env == envDevelopment {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return encoderConfig
}
