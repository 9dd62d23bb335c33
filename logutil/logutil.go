// Package logutil builds the zap loggers used by the benchmark runner and CLI.
//
// The algorithm packages never log; only orchestration code does.
package logutil

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ErrUnknownFormat is returned for Format values other than "console" and "json".
var ErrUnknownFormat = errors.New("logutil: unknown log format")

// LogConfig describes one logger.
type LogConfig struct {
	Level           string `yaml:"level" toml:"level"`                       // debug|info|warn|error
	Format          string `yaml:"format" toml:"format"`                     // console|json
	Filename        string `yaml:"filename" toml:"filename"`                 // empty: stderr
	MaxSize         int    `yaml:"max_size" toml:"max_size"`                 // megabytes per file
	MaxDays         int    `yaml:"max_days" toml:"max_days"`                 // days to keep rotated files
	MaxBackups      int    `yaml:"max_backups" toml:"max_backups"`           // rotated files to keep
	StacktraceLevel string `yaml:"stacktrace_level" toml:"stacktrace_level"` // default: fatal
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:           "info",
		Format:          "console",
		MaxSize:         64,
		StacktraceLevel: "fatal",
	}
}

// New builds a logger from cfg. Empty fields fall back to DefaultConfig.
func New(cfg LogConfig) (*zap.Logger, error) {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	if cfg.StacktraceLevel == "" {
		cfg.StacktraceLevel = def.StacktraceLevel
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logutil: level %q: %w", cfg.Level, err)
	}
	stack, err := zapcore.ParseLevel(cfg.StacktraceLevel)
	if err != nil {
		return nil, fmt.Errorf("logutil: stacktrace level %q: %w", cfg.StacktraceLevel, err)
	}
	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, cfg.syncer(), level)
	return zap.New(core, zap.AddStacktrace(stack), zap.AddCaller()), nil
}

// Must is New that panics on error; for main packages and tests.
func Must(cfg LogConfig) *zap.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

func (cfg LogConfig) syncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	return getFileSyncer(cfg)
}

func getLoggerEncoder(format string) (zapcore.Encoder, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	switch strings.ToLower(format) {
	case "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg), nil
	case "json":
		return zapcore.NewJSONEncoder(encCfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

// getFileSyncer writes through lumberjack so long benchmark sessions rotate.
func getFileSyncer(cfg LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}
