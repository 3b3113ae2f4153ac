// Package logger builds the zap logger shared by every component
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EncodingConsole renders human readable lines
	EncodingConsole = "console"
	// EncodingJSON renders one JSON object per line
	EncodingJSON = "json"

	defaultLevel = "warn"
)

// Config holds logger settings
type Config struct {
	// Level is one of debug, info, warn, error (defaults to warn)
	Level string
	// Encoding is console or json (defaults to console)
	Encoding string
	// OutputPath is a file path or stdout/stderr (defaults to stderr).
	// stdout carries answers, so logs stay off it unless asked for.
	OutputPath string
}

// New creates a zap.Logger from the config.
// An unknown level is reported on stderr and replaced by the default.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	logLevel := strings.ToLower(strings.TrimSpace(cfg.Level))
	if logLevel == "" {
		logLevel = defaultLevel
	}
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using '%s'. Error: %v\n", cfg.Level, defaultLevel, err)
		level.SetLevel(zap.WarnLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != EncodingConsole && encoding != EncodingJSON {
		encoding = EncodingConsole
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stderr"
	}

	zapConfig := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
