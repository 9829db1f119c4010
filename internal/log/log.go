// Package log wraps a package-level zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

// Until Init runs, messages go to a production logger on stderr.
var (
	baseLogger = zap.Must(zap.NewProduction(zap.AddCallerSkip(1)))
	log        = baseLogger.Sugar()
)

// Init replaces the fallback logger; debug selects the development encoder.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// SetLogger installs l, e.g. an observer core in tests.
func SetLogger(l *zap.Logger) {
	baseLogger = l.WithOptions(zap.AddCallerSkip(1))
	log = baseLogger.Sugar()
}

func Sync() {
	_ = log.Sync()
}

func Debugw(msg string, keysAndValues ...any) {
	log.Debugw(msg, keysAndValues...)
}

func Info(args ...any) {
	log.Info(args...)
}

func Infow(msg string, keysAndValues ...any) {
	log.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	log.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	log.Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...any) {
	log.Fatalf(template, args...)
}
