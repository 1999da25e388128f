// Package log is a thin context-aware facade over zap so call sites can stay
// terse and test setup can swap in a no-op logger.
package log

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Any    = zap.Any
	Err    = zap.Error
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init builds the process logger. level accepts zap level strings
// ("debug", "info", "warn", "error"); unknown values fall back to info.
func Init(appName, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build(zap.Fields(zap.String("app", appName)))
	if err != nil {
		return err
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}

// InitForTest installs a no-op logger, call it from TestMain.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	_ = get().Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, fields...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Fatalf(format, args...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Infof(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	get().Sugar().Errorf(format, args...)
}
