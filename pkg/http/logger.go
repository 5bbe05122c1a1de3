package http

import (
	"go.uber.org/zap"
)

// HTTPLogger receives request and response events from a Client.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called after a 2xx response was read
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type zapHTTPLogger struct {
	logger *zap.Logger
}

// NewZapLogger logs requests at debug level and failures at warn level.
func NewZapLogger(logger *zap.Logger) HTTPLogger {
	return &zapHTTPLogger{logger: logger.Named("http-client")}
}

func (l *zapHTTPLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	l.logger.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url))
}

func (l *zapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	l.logger.Debug("outbound response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *zapHTTPLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", truncate(responseBody, 512)),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
