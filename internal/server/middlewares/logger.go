package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Logger returns a middleware that logs the handled requests with the given logger.
func Logger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:        true,
		LogMethod:        true,
		LogURI:           true,
		LogLatency:       true,
		LogContentLength: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("[%d] %s %s (%s) %s", v.Status, v.Method, v.URI, v.ContentLength, v.Latency)
			return nil
		},
	})
}
