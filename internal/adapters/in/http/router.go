// Package http is the REST boundary of the service: the echo router, the
// ServerInterface implementation and the error envelope.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance serving the API, the swagger UI,
// metrics and the live event feed.
func NewRouter(server *Server, feed http.Handler, logger *slog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", echo.WrapHandler(feed))

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = mountSwagger(e, doc); err != nil {
		return nil, err
	}

	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(validator)
	servers.RegisterHandlers(e, server)

	return e, nil
}
