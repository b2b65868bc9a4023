package http

import (
	"context"
	"fmt"
	"strings"

	"orderdesk/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// AllowOrigins lists the CORS origins. Empty allows any origin.
	AllowOrigins []string
	// LogLevel sets echo's own framework logger.
	LogLevel string
}

// NewRouter builds the echo instance serving the API, /metrics and /swagger.
func NewRouter(ctx context.Context, server ServerInterface, opts RouterOptions) (*echo.Echo, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(opts.LogLevel))
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(opts.Logger))
	e.Use(RequestMetrics(opts.Metrics))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(corsConfig(opts.AllowOrigins)))
	e.Use(validator)

	RegisterHandlers(e, server)
	registerSwaggerUI(e, doc)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})))

	return e, nil
}

func corsConfig(origins []string) middleware.CORSConfig {
	cfg := middleware.DefaultCORSConfig
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "", "info":
		return log.INFO
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.OFF
	}
}

// Address formats the listen address for port.
func Address(port string) string {
	return fmt.Sprintf("0.0.0.0:%s", port)
}
