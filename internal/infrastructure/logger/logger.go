// Package logger builds the zap logger used by the server. Production mode
// writes JSON, everything else writes human-readable console output.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Level is the minimum level (debug, info, warn, error). Unknown values fall back to info.
	Level string
	// Production selects the JSON encoder.
	Production bool
	// Environment is attached to every entry.
	Environment string
	// OutputPaths defaults to stdout.
	OutputPaths []string
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	cfg := buildConfig(opts)
	return cfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func buildConfig(opts Options) zap.Config {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}

	var encoderConfig zapcore.EncoderConfig
	encoding := "json"
	if opts.Production {
		encoderConfig = zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoding = "console"
	}

	cfg := zap.Config{
		Level:            level,
		Development:      !opts.Production,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      opts.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stdout"}
	}
	if opts.Environment != "" {
		cfg.InitialFields = map[string]interface{}{"environment": opts.Environment}
	}
	return cfg
}
