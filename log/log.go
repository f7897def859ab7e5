// Package log provides the structured logger used by the tinyjambu CLI
// driver and benchmark harness. The AEAD core itself never logs: it is a
// synchronous, silent function of its inputs.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of a zap.SugaredLogger this package exposes.
//
//nolint:interfacebloat // mirrors the sugared logging surface deliberately
type Logger interface {
	Debug(keyvals ...interface{})
	Info(keyvals ...interface{})
	Warn(keyvals ...interface{})
	Error(keyvals ...interface{})
	Fatal(keyvals ...interface{})
	Debugw(msg string, keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(name string) Logger
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{l.SugaredLogger.With(args...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}

const (
	DebugLevel = int(zapcore.DebugLevel)
	InfoLevel  = int(zapcore.InfoLevel)
	WarnLevel  = int(zapcore.WarnLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
	FatalLevel = int(zapcore.FatalLevel)
)

// DefaultLevel is the level used by DefaultLogger. Override before the
// first call to DefaultLogger to change it.
var DefaultLevel = InfoLevel

func init() {
	if v, ok := os.LookupEnv("TINYJAMBU_LOG_LEVEL"); ok && v == "DEBUG" {
		DefaultLevel = DebugLevel
	}
}

var defaultOnce sync.Once
var defaultLogger Logger

// DefaultLogger returns the process-wide default logger, built once and
// reused for every subsequent call.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, DefaultLevel, false)
	})
	return defaultLogger
}

// New builds a logger writing to output at the given level. isJSON selects
// structured JSON output over the human-readable console encoder.
func New(output zapcore.WriteSyncer, level int, isJSON bool) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if isJSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, output, zapcore.Level(level))
	return &logger{zap.New(core, zap.WithCaller(true)).Sugar()}
}
