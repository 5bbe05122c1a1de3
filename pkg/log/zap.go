package log

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		levelFromEnv(os.Getenv("LOG_LEVEL")),
	)

	Replace(zap.New(core,
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCallerSkip(1)))
}

// Replace swaps the package logger and returns a func restoring the previous one.
// Tests use it with zaptest/observer cores.
func Replace(l *zap.Logger) func() {
	prev := logger
	logger = l
	Logger = l.Sugar()
	return func() {
		if prev != nil {
			Replace(prev)
		}
	}
}

// Base returns the underlying structured logger without the caller skip.
func Base() *zap.Logger {
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

func levelFromEnv(value string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Info logs at InfoLevel with structured fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs at InfoLevel with loosely typed key-value pairs.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

// Infof logs a formatted message at InfoLevel.
func Infof(message string, args ...interface{}) {
	Logger.Infof(message, args...)
}

// Debug logs at DebugLevel with structured fields.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Debugf logs a formatted message at DebugLevel.
func Debugf(message string, args ...interface{}) {
	Logger.Debugf(message, args...)
}

// Warn logs at WarnLevel with structured fields.
func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

// Warnw logs at WarnLevel with loosely typed key-value pairs.
func Warnw(message string, keysAndValues ...interface{}) {
	Logger.Warnw(message, keysAndValues...)
}

// Warnf logs a formatted message at WarnLevel.
func Warnf(message string, args ...interface{}) {
	Logger.Warnf(message, args...)
}

// Error logs at ErrorLevel with structured fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

// Errorw logs at ErrorLevel with loosely typed key-value pairs.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

// Errorf logs a formatted message at ErrorLevel.
func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs at FatalLevel and exits the process.
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

// Fatalf logs a formatted message and exits the process.
func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
