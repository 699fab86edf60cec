package http

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig tunes the echo instance built by NewRouter.
type RouterConfig struct {
	Logger *slog.Logger
	Debug  bool
}

// NewRouter wires the server's handlers, the OpenAPI request validator, role checks,
// access logging and the Swagger UI into a new echo instance.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	route := func(roles ...string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{s.auth.Require(roles...), validate}
	}
	anyone := []string{RoleDispatcher, RoleDriver, RoleCustomer}

	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.RegisterCustomer, route(RoleDispatcher)...)

	v1.POST("/drivers", s.RegisterDriver, route(RoleDispatcher)...)
	v1.PATCH("/drivers/:driver_id", s.UpdateDriverProfile, route(RoleDispatcher, RoleDriver)...)
	v1.PUT("/drivers/:driver_id/location", s.UpdateDriverLocation, route(RoleDispatcher, RoleDriver)...)
	v1.PUT("/drivers/:driver_id/duty", s.ChangeDriverDuty, route(RoleDispatcher, RoleDriver)...)
	v1.POST("/drivers/:driver_id/optimize-route", s.OptimizeRoute, route(RoleDispatcher, RoleDriver)...)
	v1.POST("/drivers/:driver_id/apply-route", s.ApplyRoute, route(RoleDispatcher, RoleDriver)...)

	v1.GET("/jobs", s.ListJobs, route(RoleDispatcher)...)
	v1.POST("/jobs", s.CreateJob, route(RoleDispatcher, RoleCustomer)...)
	v1.GET("/jobs/:job_id", s.GetJob, route(anyone...)...)
	v1.PATCH("/jobs/:job_id", s.UpdateJobFields, route(RoleDispatcher)...)
	v1.POST("/jobs/:job_id/status", s.TransitionJobStatus, route(RoleDispatcher, RoleDriver)...)
	v1.POST("/jobs/:job_id/assign", s.AssignDriver, route(RoleDispatcher)...)
	v1.POST("/jobs/:job_id/pod", s.CaptureProofOfDelivery, route(RoleDispatcher, RoleDriver)...)
	v1.GET("/jobs/:job_id/pod", s.GetProofOfDelivery, route(anyone...)...)
	v1.POST("/jobs/:job_id/payment-intent", s.CreatePaymentIntent, route(RoleDispatcher, RoleCustomer)...)

	v1.POST("/payments/events", s.RecordPaymentEvent, route(RoleDispatcher)...)

	v1.POST("/pricing/rules", s.CreatePricingRule, route(RoleDispatcher)...)
	v1.PUT("/pricing/rules/:rule_id/active", s.SetPricingRuleActive, route(RoleDispatcher)...)
	v1.POST("/pricing/quote", s.QuotePrice, route(anyone...)...)

	v1.GET("/tracking/:tracking_code", s.GetTracking, validate)

	return e, nil
}

// swaggerDoc serves the OpenAPI document to the Swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwagger sync.Once

func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})
	return nil
}
