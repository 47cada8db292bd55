package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the logger is built
type Options struct {
	Level            string   // debug, info, warn, error
	Encoding         string   // console or json
	OutputPaths      []string // Defaults to stderr so command output stays on stdout
	ErrorOutputPaths []string
}

// WithLevel sets the minimum enabled level
func WithLevel(level string) func(*Options) {
	return func(o *Options) {
		if level != "" {
			o.Level = level
		}
	}
}

// WithEncoding selects console or json output
func WithEncoding(encoding string) func(*Options) {
	return func(o *Options) {
		if encoding != "" {
			o.Encoding = encoding
		}
	}
}

// WithOutputPaths overrides where log entries are written
func WithOutputPaths(paths ...string) func(*Options) {
	return func(o *Options) {
		o.OutputPaths = paths
	}
}

// New builds a zap logger from the given options
func New(opts ...func(*Options)) (*zap.Logger, error) {
	options := Options{
		Level:            "info",
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	for _, opt := range opts {
		opt(&options)
	}

	lvl, err := zap.ParseAtomicLevel(options.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	conf := zap.Config{
		Level:    lvl,
		Encoding: options.Encoding,
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "msg",
			LevelKey:       "level",
			TimeKey:        "ts",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      options.OutputPaths,
		ErrorOutputPaths: options.ErrorOutputPaths,
	}

	log, err := conf.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
