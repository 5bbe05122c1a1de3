package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
)

// SetupRequestLogger assigns request ids and logs every request except
// health checks and swagger assets. Client errors are logged at warn level,
// server errors at error level.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipRequestLog,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}

			switch {
			case v.Error != nil || v.Status >= 500:
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					append(fields, zap.Error(v.Error))...)
			case v.Status >= 400:
				log.Warn(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			default:
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID), fields...)
			}
			return nil
		},
	}))
}

func skipRequestLog(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
}
