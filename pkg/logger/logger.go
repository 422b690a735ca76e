package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a printf-style facade over zap. Each level keeps its own
// sugared function so hot paths skip the level switch.
type Logger struct {
	base  *zap.SugaredLogger
	debug func(template string, args ...interface{})
	info  func(template string, args ...interface{})
	warn  func(template string, args ...interface{})
	error func(template string, args ...interface{})
}

func New() *Logger {
	return NewWithLevel("info")
}

// NewWithLevel builds a console logger; unknown levels fall back to info.
func NewWithLevel(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	instance, err := configure(lvl).Build(zap.AddCallerSkip(1))
	if err != nil {
		instance = zap.NewNop()
	}
	return wrap(instance.Sugar())
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return wrap(zap.NewNop().Sugar())
}

func wrap(s *zap.SugaredLogger) *Logger {
	return &Logger{
		base:  s,
		debug: s.Debugf,
		info:  s.Infof,
		warn:  s.Warnf,
		error: s.Errorf,
	}
}

func configure(level zapcore.Level) zap.Config {
	encoder := zap.NewProductionEncoderConfig()
	encoder.TimeKey = "timestamp"
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder.EncodeCaller = zapcore.ShortCallerEncoder
	encoder.EncodeDuration = zapcore.SecondsDurationEncoder
	encoder.CallerKey = "caller"
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     encoder,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return wrap(l.base.With(keysAndValues...))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.debug(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error(format, v...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
