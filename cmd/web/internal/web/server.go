package web

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/rasterkernels/cmd/web/handlers/api/kernel_api"
	"thirdcoast.systems/rasterkernels/cmd/web/handlers/pages"
	"thirdcoast.systems/rasterkernels/internal/db"
)

type Webserver struct {
	*echo.Echo
	dbc *db.DatabaseConnection
}

// NewWebserver builds the HTTP server. dbc may be nil; when it is set the
// stored reference table is checked against the registry before any route is
// served.
func NewWebserver(ctx context.Context, dbc *db.DatabaseConnection) (*Webserver, error) {
	if dbc != nil {
		if err := dbc.VerifyKernelPresets(ctx); err != nil {
			return nil, fmt.Errorf("verify kernel presets: %w", err)
		}
		slog.Info("convolution_kernels table matches registry")
	}

	webserver := &Webserver{
		Echo: echo.New(),
		dbc:  dbc,
	}

	if err := webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err := webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestID())
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}

func (s *Webserver) registerRoutes() error {
	apiGroup := s.Group("/api")
	apiGroup.GET("/kernels", kernel_api.HandleIndex())
	apiGroup.GET("/kernels/:ref", kernel_api.HandleShow())

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Catalogue pages
	s.GET("/kernels", pages.HandlePage())
	s.GET("/kernels.md", pages.HandleMarkdown())

	return nil
}
