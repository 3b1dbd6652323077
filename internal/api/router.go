package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/worklog/report-dashboard/docs" // registers the OpenAPI document

	"github.com/worklog/report-dashboard/internal/api/handler"
	"github.com/worklog/report-dashboard/internal/api/middleware"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Service ports.ReportService
	// Ready is pinged by /health/ready, keyed by dependency name.
	Ready map[string]handlers.Pinger
	// JWTSecret enables bearer auth on /v1 when non-empty.
	JWTSecret string
	Logger    zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "reports_http",
		Registerer: d.Registerer,
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Ready)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Reports ---
	reports := handler.NewReportHandler(d.Service)

	v1 := e.Group("/v1")
	read, write := []echo.MiddlewareFunc{}, []echo.MiddlewareFunc{}
	if d.JWTSecret != "" {
		v1.Use(middleware.Auth(d.JWTSecret))
		read = append(read, middleware.RBAC(domain.ReadRoles...))
		write = append(write, middleware.RBAC(domain.WriteRoles...))
	} else {
		d.Logger.Warn().Msg("JWT_SECRET not set, /v1 is unauthenticated")
	}

	r := v1.Group("/reports")
	r.GET("/categories", reports.Categories, read...)
	r.GET("/:category", reports.View, read...)
	r.GET("/:category/records", reports.Records, read...)
	r.GET("/:category/stats", reports.Stats, read...)
	r.GET("/:category/download", reports.Download, read...)
	r.POST("/:category/export", reports.Export, write...)
	r.POST("/:category/schedule", reports.Schedule, write...)

	return e
}

// requestLogger logs one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
